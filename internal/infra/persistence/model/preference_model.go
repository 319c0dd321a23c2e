package model

// WidgetSettingModel is the GORM-specific struct for the 'widget_settings' table.
type WidgetSettingModel struct {
	ID         int64  `gorm:"primaryKey"`
	UserID     int64  `gorm:"not null;index"`
	WidgetType string `gorm:"type:varchar(50);not null"`
	IsVisible  bool   `gorm:"not null"`
	Position   int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WidgetSettingModel) TableName() string {
	return TableWidgetSettings
}

// WeatherSettingModel is the GORM-specific struct for the 'weather_settings' table.
type WeatherSettingModel struct {
	ID     int64  `gorm:"primaryKey"`
	UserID int64  `gorm:"not null;uniqueIndex"`
	City   string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (WeatherSettingModel) TableName() string {
	return TableWeatherSettings
}
