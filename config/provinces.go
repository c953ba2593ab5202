package config

import "sort"

// Region is one of the four Thai regions used by the reference table.
type Region string

const (
	RegionCentral   Region = "กลาง"
	RegionNorth     Region = "เหนือ"
	RegionNortheast Region = "อีสาน"
	RegionSouth     Region = "ใต้"
)

// Province represents a province reference entry
type Province struct {
	Name       string  `json:"name"`
	Region     Region  `json:"region"`
	Multiplier float64 `json:"multiplier"`
}

// Provinces is the static reference table for all 77 Thai provinces.
// Loaded once at init, never mutated at runtime.
var Provinces = []Province{
	// ภาคกลาง
	{Name: "กรุงเทพมหานคร", Region: RegionCentral, Multiplier: 1.8},
	{Name: "สมุทรปราการ", Region: RegionCentral, Multiplier: 1.4},
	{Name: "นนทบุรี", Region: RegionCentral, Multiplier: 1.4},
	{Name: "ปทุมธานี", Region: RegionCentral, Multiplier: 1.3},
	{Name: "นครปฐม", Region: RegionCentral, Multiplier: 1.2},
	{Name: "สมุทรสาคร", Region: RegionCentral, Multiplier: 1.2},
	{Name: "สมุทรสงคราม", Region: RegionCentral, Multiplier: 1.0},
	{Name: "พระนครศรีอยุธยา", Region: RegionCentral, Multiplier: 1.1},
	{Name: "อ่างทอง", Region: RegionCentral, Multiplier: 0.9},
	{Name: "ลพบุรี", Region: RegionCentral, Multiplier: 0.9},
	{Name: "สิงห์บุรี", Region: RegionCentral, Multiplier: 0.85},
	{Name: "ชัยนาท", Region: RegionCentral, Multiplier: 0.85},
	{Name: "สระบุรี", Region: RegionCentral, Multiplier: 1.0},
	{Name: "ชลบุรี", Region: RegionCentral, Multiplier: 1.3},
	{Name: "ระยอง", Region: RegionCentral, Multiplier: 1.2},
	{Name: "จันทบุรี", Region: RegionCentral, Multiplier: 1.0},
	{Name: "ตราด", Region: RegionCentral, Multiplier: 1.0},
	{Name: "ฉะเชิงเทรา", Region: RegionCentral, Multiplier: 1.0},
	{Name: "ปราจีนบุรี", Region: RegionCentral, Multiplier: 0.9},
	{Name: "นครนายก", Region: RegionCentral, Multiplier: 0.95},
	{Name: "สระแก้ว", Region: RegionCentral, Multiplier: 0.85},
	{Name: "กาญจนบุรี", Region: RegionCentral, Multiplier: 0.95},
	{Name: "สุพรรณบุรี", Region: RegionCentral, Multiplier: 0.9},
	{Name: "ราชบุรี", Region: RegionCentral, Multiplier: 0.95},
	{Name: "เพชรบุรี", Region: RegionCentral, Multiplier: 1.0},
	{Name: "ประจวบคีรีขันธ์", Region: RegionCentral, Multiplier: 1.05},

	// ภาคเหนือ
	{Name: "เชียงใหม่", Region: RegionNorth, Multiplier: 1.4},
	{Name: "ลำพูน", Region: RegionNorth, Multiplier: 0.9},
	{Name: "ลำปาง", Region: RegionNorth, Multiplier: 0.95},
	{Name: "อุตรดิตถ์", Region: RegionNorth, Multiplier: 0.85},
	{Name: "แพร่", Region: RegionNorth, Multiplier: 0.85},
	{Name: "น่าน", Region: RegionNorth, Multiplier: 0.85},
	{Name: "พะเยา", Region: RegionNorth, Multiplier: 0.85},
	{Name: "เชียงราย", Region: RegionNorth, Multiplier: 1.0},
	{Name: "แม่ฮ่องสอน", Region: RegionNorth, Multiplier: 0.9},
	{Name: "นครสวรรค์", Region: RegionNorth, Multiplier: 0.9},
	{Name: "อุทัยธานี", Region: RegionNorth, Multiplier: 0.8},
	{Name: "กำแพงเพชร", Region: RegionNorth, Multiplier: 0.85},
	{Name: "ตาก", Region: RegionNorth, Multiplier: 0.85},
	{Name: "สุโขทัย", Region: RegionNorth, Multiplier: 0.85},
	{Name: "พิษณุโลก", Region: RegionNorth, Multiplier: 0.9},
	{Name: "พิจิตร", Region: RegionNorth, Multiplier: 0.85},
	{Name: "เพชรบูรณ์", Region: RegionNorth, Multiplier: 0.85},

	// ภาคตะวันออกเฉียงเหนือ (อีสาน)
	{Name: "นครราชสีมา", Region: RegionNortheast, Multiplier: 1.0},
	{Name: "บุรีรัมย์", Region: RegionNortheast, Multiplier: 0.85},
	{Name: "สุรินทร์", Region: RegionNortheast, Multiplier: 0.85},
	{Name: "ศรีสะเกษ", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "อุบลราชธานี", Region: RegionNortheast, Multiplier: 0.9},
	{Name: "ยโสธร", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "ชัยภูมิ", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "อำนาจเจริญ", Region: RegionNortheast, Multiplier: 0.75},
	{Name: "หนองบัวลำภู", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "ขอนแก่น", Region: RegionNortheast, Multiplier: 0.95},
	{Name: "อุดรธานี", Region: RegionNortheast, Multiplier: 0.9},
	{Name: "เลย", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "หนองคาย", Region: RegionNortheast, Multiplier: 0.85},
	{Name: "มหาสารคาม", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "ร้อยเอ็ด", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "กาฬสินธุ์", Region: RegionNortheast, Multiplier: 0.75},
	{Name: "สกลนคร", Region: RegionNortheast, Multiplier: 0.85},
	{Name: "นครพนม", Region: RegionNortheast, Multiplier: 0.85},
	{Name: "มุกดาหาร", Region: RegionNortheast, Multiplier: 0.8},
	{Name: "บึงกาฬ", Region: RegionNortheast, Multiplier: 0.75},

	// ภาคใต้
	{Name: "นครศรีธรรมราช", Region: RegionSouth, Multiplier: 0.95},
	{Name: "กระบี่", Region: RegionSouth, Multiplier: 1.1},
	{Name: "พังงา", Region: RegionSouth, Multiplier: 1.05},
	{Name: "ภูเก็ต", Region: RegionSouth, Multiplier: 1.5},
	{Name: "สุราษฎร์ธานี", Region: RegionSouth, Multiplier: 0.95},
	{Name: "ระนอง", Region: RegionSouth, Multiplier: 0.85},
	{Name: "ชุมพร", Region: RegionSouth, Multiplier: 0.9},
	{Name: "สงขลา", Region: RegionSouth, Multiplier: 1.0},
	{Name: "สตูล", Region: RegionSouth, Multiplier: 0.85},
	{Name: "ตรัง", Region: RegionSouth, Multiplier: 0.9},
	{Name: "พัทลุง", Region: RegionSouth, Multiplier: 0.85},
	{Name: "ปัตตานี", Region: RegionSouth, Multiplier: 0.8},
	{Name: "ยะลา", Region: RegionSouth, Multiplier: 0.8},
	{Name: "นราธิวาส", Region: RegionSouth, Multiplier: 0.8},
}

var provinceIndex = buildProvinceIndex()

func buildProvinceIndex() map[string]*Province {
	index := make(map[string]*Province, len(Provinces))
	for i := range Provinces {
		index[Provinces[i].Name] = &Provinces[i]
	}
	return index
}

// LookupProvince returns the reference entry for a province name.
// Names are matched exactly; a miss is not an error, callers fall
// back to a neutral multiplier of 1.0 with no region.
func LookupProvince(name string) (*Province, bool) {
	p, ok := provinceIndex[name]
	return p, ok
}

// ProvincesSortedByName returns a copy of the reference table ordered
// by province name.
func ProvincesSortedByName() []Province {
	sorted := make([]Province, len(Provinces))
	copy(sorted, Provinces)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// ProvinceNames returns a list of all province names in table order.
func ProvinceNames() []string {
	names := make([]string, len(Provinces))
	for i, p := range Provinces {
		names[i] = p.Name
	}
	return names
}
