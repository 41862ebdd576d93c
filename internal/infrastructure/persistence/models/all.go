package models

// All lists every model managed by AutoMigrate, parents before children
func All() []interface{} {
	return []interface{}{
		&ProfileModel{},
		&SupplierModel{},
		&TaxRateModel{},
		&ExchangeRateModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&TransactionModel{},
		&NotificationModel{},
	}
}
