package entity

// WidgetSetting is one dashboard widget slot. A user's set is always replaced as a whole.
type WidgetSetting struct {
	UserID     int64
	WidgetType string
	IsVisible  bool
	Position   int
}

// WeatherSetting is the city a user wants on the weather widget. At most one per user.
type WeatherSetting struct {
	UserID int64
	City   string
}
