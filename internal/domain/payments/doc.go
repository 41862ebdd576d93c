// Package payments holds card payments taken through a hosted payment gateway
// and the transactions recorded for them.
package payments
