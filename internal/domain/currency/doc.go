// Package currency defines the supported display/settlement currencies, exchange
// rates quoted against a single base currency, and conversion between them.
package currency
