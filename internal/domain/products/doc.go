// Package products holds the solar equipment catalogue: supplier listings,
// the admin review workflow and stock.
package products
