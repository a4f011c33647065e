package resource

// CompanyCategories is the canonical set of values the company "categories"
// select attribute accepts. Candidate values are matched case-insensitively
// against this list and substituted with the canonical casing. The list
// mirrors the remote select options and shares the same drift risk as the
// search field tables.
var CompanyCategories = []string{
	"Agriculture",
	"Automotive",
	"B2B",
	"B2C",
	"Biotechnology",
	"Construction",
	"Consulting",
	"Consumer Goods",
	"E-commerce",
	"Education",
	"Energy",
	"Entertainment",
	"Financial Services",
	"Food & Beverage",
	"Government",
	"Health Care",
	"Hospitality",
	"Insurance",
	"Legal",
	"Logistics",
	"Manufacturing",
	"Marketing",
	"Media",
	"Non-profit",
	"Real Estate",
	"Retail",
	"SaaS",
	"Security",
	"Technology",
	"Telecommunications",
	"Transportation",
	"Travel",
}
