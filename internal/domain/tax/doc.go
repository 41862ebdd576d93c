// Package tax models marketplace tax rates and the precedence rules used to pick
// the rate that applies to a sale: a rate for the buyer's country first, then a
// rate for the product category, then the default rate, and finally no tax.
package tax
