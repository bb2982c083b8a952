// Package cart contains the core aggregates of the ordering domain: the
// CustomerOrder (a user's cart that becomes a delivery order once confirmed),
// its LineItem entries, the delivery Status state machine, the PaymentType
// enumeration, and the Description entity holding free-text failure reasons.
//
// A CustomerOrder in NOT_CONFIRMED status is "the cart": the single mutable
// in-progress order a user has for one branch. Confirming promotes it into
// the delivery workflow, after which it only ever moves forward through the
// status machine and is never deleted.
package cart
