package gen

import "github.com/emsim/emsim/internal/models"

// Streets is a catalog of Richmond, VA street names.
var Streets = []string{
	"Main Street", "Cary Street", "Broad Street", "Monument Avenue",
	"Lombardy Street", "Grace Street", "Franklin Street", "Marshall Street",
	"Clay Street", "Leigh Street", "Chamberlayne Avenue", "Patterson Avenue",
	"Hull Street", "Midlothian Turnpike", "Forest Hill Avenue", "Semmes Avenue",
	"Grove Avenue", "Staples Mill Road", "Parham Road", "Three Chopt Road",
}

// Areas is a catalog of Richmond, VA neighborhoods.
var Areas = []string{
	"Fan District", "Museum District", "Carytown", "Shockoe Bottom",
	"Church Hill", "Jackson Ward", "Oregon Hill", "West End",
	"North Side", "South Side", "East End", "Westover Hills",
	"Bellevue", "Ginter Park", "Lakeside", "Bon Air",
}

// ZipCodes is a catalog of Richmond-area ZIP codes.
var ZipCodes = []string{
	"23219", "23220", "23221", "23222", "23223", "23224", "23225", "23226",
	"23227", "23228", "23229", "23230", "23231", "23232", "23233", "23234",
	"23235", "23236", "23237", "23238", "23239", "23240", "23241", "23242",
}

// Surnames is a catalog of surnames for generated people.
var Surnames = []string{
	"Adams", "Anderson", "Baker", "Barnes", "Bell", "Bennett", "Brooks",
	"Brown", "Butler", "Campbell", "Carter", "Chen", "Clark", "Collins",
	"Cooper", "Cruz", "Davis", "Diaz", "Edwards", "Evans", "Fisher",
	"Flores", "Foster", "Garcia", "Gonzalez", "Gray", "Green", "Hall",
	"Harris", "Hayes", "Henderson", "Hernandez", "Hill", "Howard", "Hughes",
	"Jackson", "James", "Jenkins", "Johnson", "Jones", "Kelly", "Kim",
	"King", "Lee", "Lewis", "Lopez", "Martin", "Martinez", "Miller",
	"Mitchell", "Moore", "Morgan", "Murphy", "Nelson", "Nguyen", "Parker",
	"Patterson", "Perez", "Peterson", "Phillips", "Powell", "Price",
	"Ramirez", "Reed", "Reyes", "Richardson", "Rivera", "Roberts",
	"Robinson", "Rodriguez", "Rogers", "Ross", "Russell", "Sanchez",
	"Sanders", "Scott", "Smith", "Stewart", "Sullivan", "Taylor", "Thomas",
	"Thompson", "Torres", "Turner", "Walker", "Ward", "Washington",
	"Watson", "White", "Williams", "Wilson", "Wood", "Wright", "Young",
}

// MaleGivenNames is a catalog of male first names.
var MaleGivenNames = []string{
	"Aaron", "Adam", "Alan", "Albert", "Alexander", "Andrew", "Anthony",
	"Arthur", "Benjamin", "Brandon", "Brian", "Carl", "Charles",
	"Christopher", "Daniel", "David", "Dennis", "Donald", "Douglas",
	"Edward", "Eric", "Frank", "Gary", "George", "Gerald", "Gregory",
	"Harold", "Henry", "Howard", "Jack", "James", "Jason", "Jeffrey",
	"Jeremy", "Jesse", "John", "Jonathan", "Joseph", "Joshua", "Justin",
	"Keith", "Kenneth", "Kevin", "Larry", "Lawrence", "Louis", "Marcus",
	"Mark", "Martin", "Matthew", "Michael", "Nathan", "Nicholas",
	"Patrick", "Paul", "Peter", "Philip", "Ralph", "Raymond", "Richard",
	"Robert", "Roger", "Ronald", "Russell", "Ryan", "Samuel", "Scott",
	"Sean", "Stephen", "Steven", "Thomas", "Timothy", "Victor", "Vincent",
	"Walter", "Wayne", "William", "Zachary",
}

// FemaleGivenNames is a catalog of female first names.
var FemaleGivenNames = []string{
	"Abigail", "Alice", "Amanda", "Amy", "Andrea", "Angela", "Anna",
	"Barbara", "Betty", "Brenda", "Carol", "Carolyn", "Catherine",
	"Charlotte", "Christina", "Christine", "Cynthia", "Deborah", "Denise",
	"Diana", "Diane", "Dorothy", "Elizabeth", "Emily", "Emma", "Frances",
	"Grace", "Hannah", "Heather", "Helen", "Isabella", "Jacqueline",
	"Janet", "Janice", "Jean", "Jennifer", "Jessica", "Joan", "Joyce",
	"Judith", "Julia", "Julie", "Karen", "Katherine", "Kathleen",
	"Kathryn", "Kelly", "Kimberly", "Laura", "Lauren", "Linda", "Lisa",
	"Louise", "Madison", "Margaret", "Maria", "Marie", "Martha", "Mary",
	"Megan", "Melissa", "Michelle", "Nancy", "Nicole", "Olivia", "Pamela",
	"Patricia", "Rachel", "Rebecca", "Ruth", "Samantha", "Sandra", "Sarah",
	"Sharon", "Shirley", "Stephanie", "Susan", "Teresa", "Victoria",
	"Virginia",
}

// MedicalConditions is a catalog of reported medical-history tags.
var MedicalConditions = []string{
	"Diabetes Type 1", "Diabetes Type 2", "Hypertension", "Asthma",
	"Heart Disease", "COPD", "Epilepsy", "Cancer", "Kidney Disease",
	"Liver Disease", "Arthritis", "Depression", "Anxiety",
	"Bipolar Disorder", "Schizophrenia", "Alzheimer's", "Dementia",
	"Parkinson's Disease", "Multiple Sclerosis", "Lupus",
	"Rheumatoid Arthritis", "Thyroid Disorders", "Sleep Apnea",
	"Obesity", "Anemia", "Blood Clotting Disorders", "None",
}

// Departments is a catalog of EMS employers in the Richmond area.
var Departments = []string{
	"Richmond Fire Department", "Richmond Ambulance Authority",
	"Henrico County Fire", "Chesterfield County Fire",
	"Virginia Commonwealth University Health",
}

// Shifts is a catalog of shift schedules.
var Shifts = []string{
	"Day Shift (06:00-18:00)", "Night Shift (18:00-06:00)",
	"Swing Shift (14:00-02:00)", "24-Hour Shift",
}

// Stations is a catalog of unit home bases in the Richmond area.
var Stations = []models.Station{
	{Name: "Station 1 - Downtown", Address: "100 N 7th St, Richmond, VA 23219"},
	{Name: "Station 2 - Fan District", Address: "200 W Cary St, Richmond, VA 23220"},
	{Name: "Station 3 - Museum District", Address: "300 W Franklin St, Richmond, VA 23220"},
	{Name: "Station 4 - Church Hill", Address: "400 N 25th St, Richmond, VA 23223"},
	{Name: "Station 5 - West End", Address: "500 Patterson Ave, Richmond, VA 23226"},
	{Name: "Station 6 - South Side", Address: "600 Hull St, Richmond, VA 23224"},
	{Name: "Station 7 - North Side", Address: "700 Chamberlayne Ave, Richmond, VA 23222"},
	{Name: "Station 8 - East End", Address: "800 Nine Mile Rd, Richmond, VA 23223"},
}

// HospitalSite is a fixed Richmond-area hospital location.
type HospitalSite struct {
	Name        string
	Address     string
	Coordinates models.Coordinates
	Type        models.HospitalType
}

// HospitalSites is a catalog of real Richmond-area hospitals used as
// generation templates. The first entry is also the fixed fallback
// destination when no candidate hospital matches.
var HospitalSites = []HospitalSite{
	{
		Name:        "VCU Medical Center",
		Address:     "1200 E Broad St, Richmond, VA 23219",
		Coordinates: models.Coordinates{Latitude: 37.5407, Longitude: -77.4348},
		Type:        models.HospitalTrauma,
	},
	{
		Name:        "Henrico Doctors' Hospital",
		Address:     "1602 Skipwith Rd, Richmond, VA 23229",
		Coordinates: models.Coordinates{Latitude: 37.6234, Longitude: -77.5678},
		Type:        models.HospitalGeneral,
	},
	{
		Name:        "St. Mary's Hospital",
		Address:     "5801 Bremo Rd, Richmond, VA 23226",
		Coordinates: models.Coordinates{Latitude: 37.5890, Longitude: -77.5234},
		Type:        models.HospitalGeneral,
	},
	{
		Name:        "Children's Hospital of Richmond",
		Address:     "1000 E Broad St, Richmond, VA 23219",
		Coordinates: models.Coordinates{Latitude: 37.5412, Longitude: -77.4356},
		Type:        models.HospitalPediatric,
	},
	{
		Name:        "Chippenham Hospital",
		Address:     "7101 Jahnke Rd, Richmond, VA 23225",
		Coordinates: models.Coordinates{Latitude: 37.5123, Longitude: -77.4789},
		Type:        models.HospitalGeneral,
	},
	{
		Name:        "Bon Secours Heart Institute",
		Address:     "5875 Bremo Rd, Richmond, VA 23226",
		Coordinates: models.Coordinates{Latitude: 37.5912, Longitude: -77.5256},
		Type:        models.HospitalCardiac,
	},
}

// ExtraSpecialties is a catalog of specialties occasionally added on top
// of a hospital type's fixed list.
var ExtraSpecialties = []string{
	"Oncology", "Neurology", "Psychiatry", "Urology", "Gynecology",
}
