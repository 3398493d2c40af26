// Package services contains stateless domain services that operate across
// aggregates. ReceiptRenderer turns a finalized order and its payments into
// the fixed-width ticket handed to the printing capability.
package services
