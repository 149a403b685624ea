package entity

// Static reference data consumed by filters and forms. These mirror the
// district and category lists of West Bengal the directory serves.

var Districts = []string{
	"Alipurduar",
	"Bankura",
	"Birbhum",
	"Cooch Behar",
	"Dakshin Dinajpur",
	"Darjeeling",
	"Hooghly",
	"Howrah",
	"Jalpaiguri",
	"Jhargram",
	"Kalimpong",
	"Kolkata",
	"Malda",
	"Murshidabad",
	"Nadia",
	"North 24 Parganas",
	"Paschim Bardhaman",
	"Paschim Medinipur",
	"Purba Bardhaman",
	"Purba Medinipur",
	"Purulia",
	"South 24 Parganas",
	"Uttar Dinajpur",
}

var BusinessTypes = []string{
	"Beauty Salon",
	"Clothing Store",
	"Education",
	"Electrician",
	"Electronics",
	"Grocery Store",
	"Hospital",
	"Lawyer",
	"Plumber",
	"Real Estate",
	"Restaurant",
	"Transport",
	"Other",
}

func IsDistrict(name string) bool {
	for _, d := range Districts {
		if d == name {
			return true
		}
	}
	return false
}

func IsBusinessType(name string) bool {
	for _, t := range BusinessTypes {
		if t == name {
			return true
		}
	}
	return false
}
