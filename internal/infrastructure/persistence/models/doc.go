// Package models contains GORM database models for the infrastructure layer.
// They are kept apart from domain entities; every model converts with ToDomain and FromDomain.
package models
