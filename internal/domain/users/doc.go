// Package users holds marketplace profiles and their roles.
package users
