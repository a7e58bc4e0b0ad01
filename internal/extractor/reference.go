package extractor

// Reference tables for the body-text heuristics. Order matters: the first entry found in the
// page text wins, so broader names that overlap narrower ones must come later.

// wineRegions are matched against the lowercased page text
var wineRegions = []string{
	"Piemont", "Toskana", "Venetien", "Lombardei", "Sizilien", "Apulien", "Sardinien",
	"Bordeaux", "Burgund", "Champagne", "Rhône", "Loire", "Elsass", "Languedoc", "Provence",
	"Rioja", "Ribera del Duero", "Priorat", "Rueda", "Penedès",
	"Wachau", "Burgenland", "Steiermark", "Kamptal", "Kremstal",
	"Mosel", "Rheingau", "Pfalz", "Baden", "Franken", "Nahe",
	"Barossa Valley", "McLaren Vale", "Hunter Valley", "Margaret River",
	"Napa Valley", "Sonoma", "Willamette Valley",
	"Mendoza", "Stellenbosch", "Douro", "Chianti", "Brunello",
	"Wallis", "Waadt", "Graubünden", "Tessin",
}

// countryKeywords maps a country name to the lowercase keywords that identify it
type countryKeywords struct {
	country  string
	keywords []string
}

var wineCountries = []countryKeywords{
	{"Italien", []string{"italien", "italy", "italia", "italiano"}},
	{"Frankreich", []string{"frankreich", "france", "français"}},
	{"Spanien", []string{"spanien", "spain", "españa"}},
	{"Österreich", []string{"österreich", "austria"}},
	{"Deutschland", []string{"deutschland", "germany"}},
	{"Schweiz", []string{"schweiz", "switzerland", "suisse", "svizzera"}},
	{"Portugal", []string{"portugal"}},
	{"Australien", []string{"australien", "australia"}},
	{"USA", []string{"usa", "united states", "kalifornien", "california", "oregon"}},
	{"Argentinien", []string{"argentinien", "argentina"}},
	{"Chile", []string{"chile"}},
	{"Südafrika", []string{"südafrika", "south africa"}},
	{"Neuseeland", []string{"neuseeland", "new zealand"}},
}

// grapeVarieties are matched against the lowercased page text
var grapeVarieties = []string{
	"Nebbiolo", "Sangiovese", "Barbera", "Primitivo", "Corvina", "Nero d'Avola",
	"Cabernet Sauvignon", "Merlot", "Pinot Noir", "Syrah", "Shiraz", "Grenache",
	"Tempranillo", "Garnacha", "Monastrell", "Mencía",
	"Blaufränkisch", "Zweigelt", "St. Laurent",
	"Spätburgunder", "Dornfelder", "Lemberger", "Trollinger",
	"Malbec", "Carménère", "Pinotage", "Tannat",
	"Chardonnay", "Sauvignon Blanc", "Riesling", "Pinot Grigio", "Pinot Gris",
	"Gewürztraminer", "Grüner Veltliner", "Muscat", "Viognier",
	"Chenin Blanc", "Sémillon", "Marsanne", "Roussanne",
	"Albariño", "Verdejo", "Godello", "Grillo", "Vermentino",
	"Müller-Thurgau", "Silvaner", "Weissburgunder",
	"Chasselas", "Petite Arvine", "Completer", "Cornalin",
	"Gamay", "Carignan", "Mourvèdre", "Cinsault",
	"Cabernet Franc", "Petit Verdot", "Zinfandel",
}
