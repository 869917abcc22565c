// Package customer implements the customer aggregate and the referral
// relation between customers.
//
// The referral relation is a forest: each customer has at most one
// referrer, set at most once. ReferralGraph exposes a depth-capped
// adjacency lookup over customer records so affiliate attribution stays
// single-level and terminates regardless of upstream data quality.
package customer
