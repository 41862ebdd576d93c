// Package orders holds customer orders, their line items and the fulfilment
// status machine.
package orders
