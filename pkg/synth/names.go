package synth

// Corpora for name synthesis. Surnames double as company stems, so a few
// entries deliberately contain "and" as a substring (Anderson, Sanders,
// Hernandez) to exercise the ticker override the same way real registry
// names would.
var surnames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanders", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

var companySuffixes = []string{"Inc", "LLC", "Ltd", "PLC", "Group"}

var firstNamesFemale = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
	"Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty",
	"Margaret", "Sandra", "Ashley", "Kimberly", "Emily", "Donna", "Michelle",
}

var firstNamesMale = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard",
	"Joseph", "Thomas", "Charles", "Christopher", "Daniel", "Matthew",
	"Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Joshua",
}

var jobs = []string{
	"Accountant", "Architect", "Civil engineer", "Data scientist",
	"Dentist", "Economist", "Electrical engineer", "Geologist",
	"Journalist", "Lawyer", "Nurse", "Optician", "Pharmacist",
	"Physiotherapist", "Software engineer", "Statistician", "Surveyor",
	"Teacher", "Translator", "Veterinarian",
}

var mailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com"}

// companyName synthesizes a company name in one of the shapes commercial
// registries commonly use. The shapes are chosen so every branch of the
// ticker heuristic gets exercised.
func companyName(r Rand) string {
	switch r.Intn(4) {
	case 0:
		return pick(r, surnames) + " " + pick(r, companySuffixes)
	case 1:
		return pick(r, surnames) + "-" + pick(r, surnames)
	case 2:
		return pick(r, surnames) + ", " + pick(r, surnames) + " and " + pick(r, surnames)
	default:
		return pick(r, surnames) + " and Sons"
	}
}

func pick(r Rand, list []string) string {
	return list[r.Intn(len(list))]
}
