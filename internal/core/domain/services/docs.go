// Package services contains domain services that implement business
// operations spanning multiple aggregates.
//
// SettlementCalculator prices a collected pickup: the customer payout
// from the tiered price table, the courier operational fee, and the
// single-level affiliate fee owed to the customer's direct referrer.
package services
