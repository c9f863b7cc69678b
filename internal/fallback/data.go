package fallback

// Builtin synonym data. Keys are lowercase; matching is word-bounded and
// case-insensitive. Extend at runtime via a YAML overrides file rather than
// editing these maps.

var builtinCountries = map[string]string{
	"france":          "France",
	"french republic": "France",
	"germany":         "Germany",
	"deutschland":     "Germany",
	"netherlands":     "Netherlands",
	"holland":         "Netherlands",
	"the netherlands": "Netherlands",
	"belgium":         "Belgium",
	"united kingdom":  "United Kingdom",
	"uk":              "United Kingdom",
	"england":         "United Kingdom",
	"scotland":        "United Kingdom",
	"great britain":   "United Kingdom",
	"united states":   "United States",
	"usa":             "United States",
	"u.s.a.":          "United States",
	"u.s.":            "United States",
	"america":         "United States",
	"spain":           "Spain",
	"españa":          "Spain",
	"italy":           "Italy",
	"italia":          "Italy",
	"portugal":        "Portugal",
	"switzerland":     "Switzerland",
	"austria":         "Austria",
	"poland":          "Poland",
	"denmark":         "Denmark",
	"sweden":          "Sweden",
	"norway":          "Norway",
	"finland":         "Finland",
	"ireland":         "Ireland",
	"japan":           "Japan",
	"china":           "China",
	"india":           "India",
	"australia":       "Australia",
	"new zealand":     "New Zealand",
	"canada":          "Canada",
	"mexico":          "Mexico",
	"brazil":          "Brazil",
	"brasil":          "Brazil",
	"argentina":       "Argentina",
	"chile":           "Chile",
	"colombia":        "Colombia",
	"ecuador":         "Ecuador",
	"kenya":           "Kenya",
	"ethiopia":        "Ethiopia",
	"south africa":    "South Africa",
	"morocco":         "Morocco",
	"israel":          "Israel",
	"turkey":          "Turkey",
	"türkiye":         "Turkey",
	"greece":          "Greece",
	"hungary":         "Hungary",
	"czech republic":  "Czechia",
	"czechia":         "Czechia",
	"thailand":        "Thailand",
	"vietnam":         "Vietnam",
	"south korea":     "South Korea",
	"korea":           "South Korea",
	"taiwan":          "Taiwan",
}

var builtinSpecies = map[string]Species{
	"rosa":          {Latin: "Rosa", Common: "Rose"},
	"rose":          {Latin: "Rosa", Common: "Rose"},
	"roses":         {Latin: "Rosa", Common: "Rose"},
	"tulipa":        {Latin: "Tulipa", Common: "Tulip"},
	"tulip":         {Latin: "Tulipa", Common: "Tulip"},
	"tulips":        {Latin: "Tulipa", Common: "Tulip"},
	"lilium":        {Latin: "Lilium", Common: "Lily"},
	"lily":          {Latin: "Lilium", Common: "Lily"},
	"lilies":        {Latin: "Lilium", Common: "Lily"},
	"chrysanthemum": {Latin: "Chrysanthemum", Common: "Chrysanthemum"},
	"dianthus":      {Latin: "Dianthus", Common: "Carnation"},
	"carnation":     {Latin: "Dianthus", Common: "Carnation"},
	"gerbera":       {Latin: "Gerbera", Common: "Gerbera Daisy"},
	"orchid":        {Latin: "Orchidaceae", Common: "Orchid"},
	"phalaenopsis":  {Latin: "Phalaenopsis", Common: "Moth Orchid"},
	"hydrangea":     {Latin: "Hydrangea", Common: "Hydrangea"},
	"lavandula":     {Latin: "Lavandula", Common: "Lavender"},
	"lavender":      {Latin: "Lavandula", Common: "Lavender"},
	"helianthus":    {Latin: "Helianthus annuus", Common: "Sunflower"},
	"sunflower":     {Latin: "Helianthus annuus", Common: "Sunflower"},
	"narcissus":     {Latin: "Narcissus", Common: "Daffodil"},
	"daffodil":      {Latin: "Narcissus", Common: "Daffodil"},
	"hyacinthus":    {Latin: "Hyacinthus", Common: "Hyacinth"},
	"hyacinth":      {Latin: "Hyacinthus", Common: "Hyacinth"},
	"paeonia":       {Latin: "Paeonia", Common: "Peony"},
	"peony":         {Latin: "Paeonia", Common: "Peony"},
	"malus":         {Latin: "Malus domestica", Common: "Apple"},
	"apple":         {Latin: "Malus domestica", Common: "Apple"},
	"prunus":        {Latin: "Prunus", Common: "Cherry"},
	"cherry":        {Latin: "Prunus", Common: "Cherry"},
	"citrus":        {Latin: "Citrus", Common: "Citrus"},
	"vitis":         {Latin: "Vitis vinifera", Common: "Grape"},
	"grape":         {Latin: "Vitis vinifera", Common: "Grape"},
	"solanum":       {Latin: "Solanum lycopersicum", Common: "Tomato"},
	"tomato":        {Latin: "Solanum lycopersicum", Common: "Tomato"},
	"capsicum":      {Latin: "Capsicum annuum", Common: "Pepper"},
	"fragaria":      {Latin: "Fragaria", Common: "Strawberry"},
	"strawberry":    {Latin: "Fragaria", Common: "Strawberry"},
	"begonia":       {Latin: "Begonia", Common: "Begonia"},
	"fuchsia":       {Latin: "Fuchsia", Common: "Fuchsia"},
	"geranium":      {Latin: "Pelargonium", Common: "Geranium"},
	"pelargonium":   {Latin: "Pelargonium", Common: "Geranium"},
	"viola":         {Latin: "Viola", Common: "Pansy"},
	"pansy":         {Latin: "Viola", Common: "Pansy"},
	"petunia":       {Latin: "Petunia", Common: "Petunia"},
	"dahlia":        {Latin: "Dahlia", Common: "Dahlia"},
	"iris":          {Latin: "Iris", Common: "Iris"},
	"gladiolus":     {Latin: "Gladiolus", Common: "Gladiolus"},
	"freesia":       {Latin: "Freesia", Common: "Freesia"},
	"anemone":       {Latin: "Anemone", Common: "Anemone"},
	"ranunculus":    {Latin: "Ranunculus", Common: "Buttercup"},
	"camellia":      {Latin: "Camellia", Common: "Camellia"},
	"rhododendron":  {Latin: "Rhododendron", Common: "Rhododendron"},
	"azalea":        {Latin: "Rhododendron", Common: "Azalea"},
	"magnolia":      {Latin: "Magnolia", Common: "Magnolia"},
	"wisteria":      {Latin: "Wisteria", Common: "Wisteria"},
	"clematis":      {Latin: "Clematis", Common: "Clematis"},
	"jasminum":      {Latin: "Jasminum", Common: "Jasmine"},
	"jasmine":       {Latin: "Jasminum", Common: "Jasmine"},
	"ficus":         {Latin: "Ficus", Common: "Fig"},
	"acer":          {Latin: "Acer", Common: "Maple"},
	"maple":         {Latin: "Acer", Common: "Maple"},
	"quercus":       {Latin: "Quercus", Common: "Oak"},
	"oak":           {Latin: "Quercus", Common: "Oak"},
	"bamboo":        {Latin: "Bambusoideae", Common: "Bamboo"},
	"fern":          {Latin: "Polypodiopsida", Common: "Fern"},
	"cactus":        {Latin: "Cactaceae", Common: "Cactus"},
	"succulent":     {Latin: "Crassulaceae", Common: "Succulent"},
	"hosta":         {Latin: "Hosta", Common: "Hosta"},
	"sedum":         {Latin: "Sedum", Common: "Stonecrop"},
	"salvia":        {Latin: "Salvia", Common: "Sage"},
	"sage":          {Latin: "Salvia", Common: "Sage"},
	"mentha":        {Latin: "Mentha", Common: "Mint"},
	"mint":          {Latin: "Mentha", Common: "Mint"},
	"basil":         {Latin: "Ocimum basilicum", Common: "Basil"},
	"ocimum":        {Latin: "Ocimum basilicum", Common: "Basil"},
	"thymus":        {Latin: "Thymus", Common: "Thyme"},
	"thyme":         {Latin: "Thymus", Common: "Thyme"},
	"rosmarinus":    {Latin: "Salvia rosmarinus", Common: "Rosemary"},
	"rosemary":      {Latin: "Salvia rosmarinus", Common: "Rosemary"},
}
