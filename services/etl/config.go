package etl

import (
	"gdpetl-backend/lib/configutil/sqlconfig"
	"gdpetl-backend/lib/scrapers/gdp"
)

type Config struct {
	URL            string           `json:"url"`
	TableAttribs   Schema           `json:"table_attribs"`
	CSVPath        string           `json:"csv_path"`
	Database       sqlconfig.Struct `json:"database"`
	TableName      string           `json:"table_name"`
	LogPath        string           `json:"log_path"`
	MinGDPBillions float64          `json:"min_gdp_billions"`
}

func DefaultConfig() Config {
	return Config{
		URL: gdp.DefaultURL,
		TableAttribs: Schema{
			Country: ColumnCountry,
			GDP:     ColumnGDPMillions,
		},
		CSVPath:        "./Countries_by_GDP.csv",
		Database:       sqlconfig.Struct{File: "World_Economies.db"},
		TableName:      "Countries_by_GDP",
		LogPath:        "./etl_project_log.txt",
		MinGDPBillions: 100,
	}
}
