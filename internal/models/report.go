package models

type SiteHours struct {
	SiteName    string  `db:"site_name"`
	TotalHours  float64 `db:"total_hours"`
	RecordCount int     `db:"record_count"`
}

type EquipmentTotal struct {
	EquipmentType string `db:"equipment_type"`
	TotalQuantity int    `db:"total_quantity"`
}
