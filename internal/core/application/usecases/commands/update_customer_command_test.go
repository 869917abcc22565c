package commands_test

import (
	"testing"

	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateCustomerCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		"Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung",
		"https://maps.app.goo.gl/abc123", "BCA 1234567890",
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, customerID, cmd.CustomerID())
	require.Equal(t, "Warung Bu Siti", cmd.Name())
	require.Equal(t, "https://maps.app.goo.gl/abc123", cmd.ShareLocation())
	require.Equal(t, "BCA 1234567890", cmd.BankAccount())
}

func TestNewUpdateCustomerCommand_OptionalFieldsMayBeEmpty(t *testing.T) {
	cmd, err := commands.NewUpdateCustomerCommand(
		kernel.NewUUID(),
		"Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung",
		"", "",
	)

	require.NoError(t, err)
	require.Empty(t, cmd.ShareLocation())
	require.Empty(t, cmd.BankAccount())
}

func TestNewUpdateCustomerCommand_Errors(t *testing.T) {
	tests := []struct {
		name       string
		customerID kernel.UUID
		custName   string
		phone      string
		address    string
		district   string
		city       string
	}{
		{"empty customer id", kernel.UUID{}, "Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung"},
		{"empty name", kernel.NewUUID(), "", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung"},
		{"empty phone", kernel.NewUUID(), "Warung Bu Siti", "", "Jl. Merdeka No. 1", "Coblong", "Bandung"},
		{"empty address", kernel.NewUUID(), "Warung Bu Siti", "081234567890", "", "Coblong", "Bandung"},
		{"empty district", kernel.NewUUID(), "Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "", "Bandung"},
		{"empty city", kernel.NewUUID(), "Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewUpdateCustomerCommand(
				tt.customerID,
				tt.custName, tt.phone, tt.address, tt.district, tt.city,
				"", "",
			)
			require.Error(t, err)
		})
	}
}

func TestUpdateCustomerCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.UpdateCustomerCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateCustomerCommandIsNotConstructed)
}
