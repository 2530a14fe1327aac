package congestion

// CityDataResponse mirrors the upstream city-data payload. The API returns
// a fixed top-level key holding observation rows; only the first row is
// consumed.
type CityDataResponse struct {
	Rows []PlaceStatus `json:"SeoulRtd.citydata_ppltn"`
}

// PlaceStatus is one congestion observation for an area.
type PlaceStatus struct {
	AreaName      string `json:"AREA_NM"`
	CongestionLvl string `json:"AREA_CONGEST_LVL"`
	CongestionMsg string `json:"AREA_CONGEST_MSG"`
}
