package canvas

// DashboardCard is one dashboard card from /api/v1/dashboard/dashboard_cards.
// This endpoint uses camelCase field names, unlike the rest of the API.
type DashboardCard struct {
	ID              string              `json:"id"`
	LongName        string              `json:"longName"`
	ShortName       string              `json:"shortName"`
	OriginalName    string              `json:"originalName"`
	CourseCode      string              `json:"courseCode"`
	AssetString     string              `json:"assetString"`
	Href            string              `json:"href"`
	Term            string              `json:"term"`
	Subtitle        string              `json:"subtitle"`
	EnrollmentState string              `json:"enrollmentState"`
	EnrollmentType  string              `json:"enrollmentType"`
	IsFavorited     bool                `json:"isFavorited"`
	IsK5Subject     bool                `json:"isK5Subject"`
	IsHomeroom      bool                `json:"isHomeroom"`
	Image           *string             `json:"image"`
	Color           *string             `json:"color"`
	Position        *int                `json:"position"`
	Published       bool                `json:"published"`
	DefaultView     string              `json:"defaultView"`
	PagesURL        string              `json:"pagesUrl"`
	FrontPageTitle  string              `json:"frontPageTitle"`
	Links           []DashboardCardLink `json:"links"`
}

// DashboardCardLink is one tab link shown on a dashboard card.
type DashboardCardLink struct {
	CSSClass string `json:"css_class"`
	Icon     string `json:"icon"`
	Hidden   *bool  `json:"hidden"`
	Path     string `json:"path"`
	Label    string `json:"label"`
}
