// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL (production) or SQLite
// (local runs and tests) and stores profiles, suppliers, products, orders,
// payment transactions, notifications, tax rates and exchange rates.
package persistence
