// Package model contains the GORM row structs. Table names are unqualified;
// the persistence layer prefixes them with the configured schema.
package model

// Table names
const (
	TableUsers               = "users"
	TablePassports           = "passports"
	TableTransitCards        = "podorozhnik_cards"
	TableTransitTransactions = "podorozhnik_transactions"
	TableBankCards           = "bank_cards"
	TableVehicles            = "vehicles"
	TableFines               = "fines"
	TableIntercoms           = "intercoms"
	TableWidgetSettings      = "widget_settings"
	TableWeatherSettings     = "weather_settings"
	TableTaxes               = "taxes"
	TableBenefits            = "benefits"
)
