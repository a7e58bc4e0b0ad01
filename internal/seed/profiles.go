package seed

import "github.com/housestock/backend/internal/domain"

type grape struct {
	name string
	kind domain.WineType
}

type regionProfile struct {
	country   string
	region    string
	grapes    []grape
	producers []string
	names     []string
	minPrice  int
	maxPrice  int
	locations []string
}

var (
	red       = domain.WineTypeRed
	white     = domain.WineTypeWhite
	sparkling = domain.WineTypeSparkling
	dessert   = domain.WineTypeDessert
)

var profiles = []regionProfile{
	{
		country: "Frankreich", region: "Bordeaux",
		grapes: []grape{
			{"Cabernet Sauvignon", red}, {"Merlot", red}, {"Cabernet Franc", red},
			{"Sauvignon Blanc", white}, {"Sémillon", white},
		},
		producers: []string{"Château Margaux", "Château Latour", "Château Haut-Brion", "Château Lynch-Bages",
			"Château Palmer", "Château Pichon Baron"},
		names:     []string{"Grand Vin", "Second Vin", "Réserve Spéciale", "Cuvée Prestige", "Médoc Supérieur"},
		minPrice: 25, maxPrice: 350,
		locations: []string{"Bordeaux Vinothek", "Wine & Co Online", "Vinothek Brancaia"},
	},
	{
		country: "Frankreich", region: "Burgund",
		grapes:    []grape{{"Pinot Noir", red}, {"Chardonnay", white}, {"Gamay", red}, {"Aligoté", white}},
		producers: []string{"Domaine Leflaive", "Joseph Drouhin", "Louis Jadot", "Domaine Armand Rousseau", "Albert Bichot"},
		names:     []string{"Gevrey-Chambertin", "Meursault", "Chablis Premier Cru", "Pommard", "Volnay"},
		minPrice: 20, maxPrice: 280,
		locations: []string{"Weinhandlung Kreis", "La Cave de Bourgogne", "Vinothek Bern"},
	},
	{
		country: "Frankreich", region: "Champagne",
		grapes: []grape{
			{"Chardonnay, Pinot Noir, Pinot Meunier", sparkling}, {"Chardonnay", sparkling}, {"Pinot Noir", sparkling},
		},
		producers: []string{"Krug", "Louis Roederer", "Bollinger", "Pol Roger", "Ruinart", "Billecart-Salmon"},
		names:     []string{"Brut Réserve", "Blanc de Blancs", "Cuvée Prestige", "Millésimé", "Grand Cru"},
		minPrice: 30, maxPrice: 250,
		locations: []string{"Globus", "Manor", "Champagne Direct"},
	},
	{
		country: "Frankreich", region: "Rhône",
		grapes: []grape{
			{"Syrah", red}, {"Grenache", red}, {"Mourvèdre", red}, {"Viognier", white},
			{"Grenache, Syrah, Mourvèdre", red},
		},
		producers: []string{"E. Guigal", "M. Chapoutier", "Paul Jaboulet Aîné", "Château de Beaucastel", "Clos des Papes"},
		names:     []string{"Châteauneuf-du-Pape", "Hermitage", "Crozes-Hermitage", "Gigondas", "Condrieu"},
		minPrice: 15, maxPrice: 180,
		locations: []string{"Wine & Co Online", "Weinhandlung Kreis", "Vinothek Zürich"},
	},
	{
		country: "Italien", region: "Piemont",
		grapes: []grape{
			{"Nebbiolo", red}, {"Barbera", red}, {"Dolcetto", red}, {"Arneis", white}, {"Moscato", dessert},
		},
		producers: []string{"Giacomo Conterno", "Bruno Giacosa", "Gaja", "Vietti", "Produttori del Barbaresco", "Ceretto"},
		names: []string{"Barolo Riserva", "Barbaresco", "Barbera d'Alba", "Langhe Nebbiolo", "Moscato d'Asti",
			"Roero Arneis"},
		minPrice: 12, maxPrice: 250,
		locations: []string{"Vinothek am Naschmarkt", "Weinhandlung Kreis", "Metro"},
	},
	{
		country: "Italien", region: "Toskana",
		grapes: []grape{
			{"Sangiovese", red}, {"Cabernet Sauvignon", red}, {"Merlot", red}, {"Vernaccia", white},
		},
		producers: []string{"Antinori", "Ornellaia", "Fontodi", "Isole e Olena", "Castello Banfi", "Biondi-Santi"},
		names: []string{"Brunello di Montalcino", "Chianti Classico Riserva", "Bolgheri Superiore",
			"Vino Nobile di Montepulciano", "Rosso di Montalcino"},
		minPrice: 10, maxPrice: 220,
		locations: []string{"Vinothek Brancaia", "Weinhandlung Kreis", "Wine & Co Online"},
	},
	{
		country: "Italien", region: "Venetien",
		grapes:    []grape{{"Corvina", red}, {"Garganega", white}, {"Glera", sparkling}, {"Corvina, Rondinella", red}},
		producers: []string{"Allegrini", "Masi", "Bertani", "Pieropan", "Quintarelli", "Zenato"},
		names: []string{"Amarone della Valpolicella", "Valpolicella Ripasso", "Soave Classico",
			"Prosecco Superiore", "Lugana"},
		minPrice: 8, maxPrice: 150,
		locations: []string{"Metro", "Vinothek Zürich", "Coop"},
	},
	{
		country: "Spanien", region: "Rioja",
		grapes:    []grape{{"Tempranillo", red}, {"Garnacha", red}, {"Graciano", red}, {"Viura", white}},
		producers: []string{"López de Heredia", "La Rioja Alta", "CVNE", "Marqués de Murrieta", "Muga", "Artadi"},
		names:     []string{"Viña Tondonia Reserva", "Gran Reserva 904", "Imperial Reserva", "Crianza", "Reserva"},
		minPrice: 8, maxPrice: 85,
		locations: []string{"Vinothek Zürich", "Wine & Co Online", "Weinhandlung Kreis"},
	},
	{
		country: "Deutschland", region: "Mosel",
		grapes:    []grape{{"Riesling", white}},
		producers: []string{"Joh. Jos. Prüm", "Egon Müller", "Markus Molitor", "Dr. Loosen", "Fritz Haag", "Zilliken"},
		names: []string{"Wehlener Sonnenuhr Spätlese", "Scharzhofberger Auslese", "Ürziger Würzgarten Kabinett",
			"Graacher Himmelreich", "Riesling Trocken GG"},
		minPrice: 10, maxPrice: 180,
		locations: []string{"Weinhaus Becker", "Weinhandlung Kreis", "Globus"},
	},
	{
		country: "Deutschland", region: "Pfalz",
		grapes: []grape{
			{"Riesling", white}, {"Spätburgunder", red}, {"Weissburgunder", white}, {"Grauburgunder", white},
		},
		producers: []string{"Bürklin-Wolf", "Müller-Catoir", "Christmann", "Knipser", "Von Winning"},
		names:     []string{"Forster Ungeheuer GG", "Haardter Bürgergarten", "Riesling Trocken", "Spätburgunder Réserve"},
		minPrice: 9, maxPrice: 65,
		locations: []string{"Weinhaus Becker", "Jacques Wein-Depot", "Globus"},
	},
	{
		country: "Österreich", region: "Wachau",
		grapes:    []grape{{"Grüner Veltliner", white}, {"Riesling", white}},
		producers: []string{"F.X. Pichler", "Hirtzberger", "Knoll", "Prager", "Domäne Wachau", "Nikolaihof"},
		names: []string{"Grüner Veltliner Smaragd", "Riesling Smaragd Kellerberg", "Federspiel Terrassen",
			"Loibner Grüner Veltliner"},
		minPrice: 15, maxPrice: 95,
		locations: []string{"Vinothek am Naschmarkt", "Ab Hof", "Weinhandlung Kreis"},
	},
	{
		country: "Schweiz", region: "Wallis",
		grapes: []grape{
			{"Pinot Noir", red}, {"Gamay", red}, {"Syrah", red}, {"Fendant (Chasselas)", white},
			{"Petite Arvine", white}, {"Cornalin", red},
		},
		producers: []string{"Marie-Thérèse Chappaz", "Cave du Rhodan", "Simon Maye & Fils", "Provins", "Didier Joris"},
		names:     []string{"Fendant Grand Cru", "Petite Arvine", "Cornalin du Valais", "Syrah Réserve", "Heida"},
		minPrice: 12, maxPrice: 55,
		locations: []string{"Coop", "Manor", "Ab Hof", "Vinothek Sion"},
	},
	{
		country: "Portugal", region: "Douro",
		grapes: []grape{
			{"Touriga Nacional", red}, {"Tinta Roriz", red}, {"Touriga Franca", red},
		},
		producers: []string{"Quinta do Noval", "Niepoort", "Quinta do Crasto", "Quinta do Vallado"},
		names:     []string{"Redoma Reserva", "Douro Tinto Reserva", "Charme", "Post Scriptum"},
		minPrice: 8, maxPrice: 120,
		locations: []string{"Wine & Co Online", "Vinothek Zürich", "Metro"},
	},
	{
		country: "USA", region: "Napa Valley",
		grapes: []grape{
			{"Cabernet Sauvignon", red}, {"Chardonnay", white}, {"Merlot", red}, {"Zinfandel", red},
		},
		producers: []string{"Opus One", "Caymus", "Stag's Leap Wine Cellars", "Robert Mondavi", "Joseph Phelps", "Shafer"},
		names:     []string{"Cabernet Sauvignon Reserve", "Insignia", "Artemis", "Hillside Select"},
		minPrice: 25, maxPrice: 350,
		locations: []string{"Wine & Co Online", "Globus", "Vinothek Zürich"},
	},
	{
		country: "Argentinien", region: "Mendoza",
		grapes:    []grape{{"Malbec", red}, {"Cabernet Sauvignon", red}, {"Torrontés", white}},
		producers: []string{"Catena Zapata", "Achaval-Ferrer", "Zuccardi", "Luigi Bosca", "Salentein"},
		names:     []string{"Malbec Argentino", "Adrianna Vineyard", "Nicasia", "Gran Reserva"},
		minPrice: 8, maxPrice: 95,
		locations: []string{"Wine & Co Online", "Coop", "Metro"},
	},
	{
		country: "Ungarn", region: "Tokaj",
		grapes:    []grape{{"Furmint", white}, {"Furmint", dessert}, {"Hárslevelű", white}},
		producers: []string{"Royal Tokaji", "Disznókő", "Oremus", "Szepsy"},
		names:     []string{"Tokaji Aszú 5 Puttonyos", "Tokaji Szamorodni", "Furmint Dry", "Essencia"},
		minPrice: 10, maxPrice: 150,
		locations: []string{"Wine & Co Online", "Vinothek Zürich", "Spezialitätenhandel"},
	},
}

var notesByType = map[domain.WineType][]string{
	domain.WineTypeRed: {
		"Dunkle Frucht, Brombeere, Cassis, samtige Tannine",
		"Komplex, Tabak, Leder, lange Nachhaltigkeit",
		"Kirsche, Pflaume, Vanille aus dem Holz",
		"Kräftige Tannine, braucht noch Zeit",
		"Weich und rund, sofort trinkbar",
		"Rauchig, Pfeffer, mediterrane Kräuter",
	},
	domain.WineTypeWhite: {
		"Mineralisch, Zitrus, grüner Apfel",
		"Exotische Frucht, Mango, reife Birne",
		"Cremig, Butter, elegantes Holz",
		"Flintig, Feuerstein, straffe Säure",
		"Pfirsich, Aprikose, zarter Schmelz",
	},
	domain.WineTypeRose: {
		"Erdbeere, Himbeere, frischer Sommertrunk",
		"Wassermelone, Rosenblüte, leicht und spritzig",
	},
	domain.WineTypeSparkling: {
		"Feine Perlage, Brioche, Zitrusfrüchte",
		"Hefig, Toastnoten, eleganter Abgang",
		"Cremig, Mandel, lange Reife auf der Hefe",
	},
	domain.WineTypeDessert: {
		"Honig, Aprikose, konzentrierte Süsse",
		"Karamell, Orangenschale, sirupartige Textur",
	},
}

var giftGivers = []string{"Tante Maria", "Onkel Hans", "Freund Marco", "Weinclub", "Geburtstag Petra", "Chef Thomas"}
