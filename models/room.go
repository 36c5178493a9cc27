package models

// Room is one bookable unit type in the static catalog. The catalog is fixed
// at process start; prices are locale-formatted strings with thousands
// separators, exactly as the marketing site displays them, and must be parsed
// before any arithmetic.
type Room struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice"`
	Size          string   `json:"size"`
	Guests        int      `json:"guests"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular"`
	Category      string   `json:"category"`
}

// Room categories (closed set).
const (
	CategoryStandard = "standard"
	CategoryDeluxe   = "deluxe"
	CategorySuite    = "suite"
	CategoryFamily   = "family"
)

// RoomTypeFallback is the category -> price table used when a booking
// references a room type instead of a concrete room id (the generic booking
// form books by category).
type RoomTypeFallback struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// RoomTypeFallbacks keeps the booking form's ordering.
var RoomTypeFallbacks = []RoomTypeFallback{
	{Key: "standard", Name: "Phòng Standard", Price: 1500000},
	{Key: "deluxe", Name: "Phòng Deluxe", Price: 2200000},
	{Key: "suite", Name: "Phòng Suite", Price: 3500000},
	{Key: "presidential", Name: "Phòng Presidential", Price: 5000000},
}

// Rooms is the full catalog. Order matters: the "popular" sort is stable and
// ties keep this order.
var Rooms = []Room{
	{
		ID:            1,
		Name:          "Phòng Standard",
		Price:         "1,500,000",
		OriginalPrice: "1,800,000",
		Size:          "25m²",
		Guests:        2,
		Features:      []string{"1 giường đôi", "Phù hợp cho cặp đôi", "Tầm nhìn đẹp", "Minibar"},
		Popular:       false,
		Category:      CategoryStandard,
	},
	{
		ID:            2,
		Name:          "Phòng Family",
		Price:         "2,800,000",
		OriginalPrice: "3,200,000",
		Size:          "50m²",
		Guests:        4,
		Features:      []string{"2 giường đôi", "Phù hợp cho gia đình", "Khu vực sinh hoạt rộng", "Minibar"},
		Popular:       true,
		Category:      CategoryFamily,
	},
	{
		ID:            3,
		Name:          "Phòng Deluxe",
		Price:         "2,200,000",
		OriginalPrice: "2,600,000",
		Size:          "35m²",
		Guests:        2,
		Features:      []string{"1 giường đôi lớn", "Ban công riêng", "Tầm nhìn thành phố", "Minibar đầy đủ"},
		Popular:       false,
		Category:      CategoryDeluxe,
	},
	{
		ID:            8,
		Name:          "Family Deluxe",
		Price:         "3,800,000",
		OriginalPrice: "4,500,000",
		Size:          "60m²",
		Guests:        5,
		Features:      []string{"2 phòng ngủ", "Phòng khách", "Bếp mini", "Phù hợp gia đình"},
		Popular:       false,
		Category:      CategoryFamily,
	},
	{
		ID:            13,
		Name:          "Family Suite",
		Price:         "4,800,000",
		OriginalPrice: "5,500,000",
		Size:          "75m²",
		Guests:        6,
		Features:      []string{"2 phòng ngủ", "Phòng khách lớn", "Bếp đầy đủ", "Phù hợp gia đình lớn"},
		Popular:       false,
		Category:      CategoryFamily,
	},
	{
		ID:            4,
		Name:          "Phòng Superior",
		Price:         "1,800,000",
		OriginalPrice: "2,100,000",
		Size:          "30m²",
		Guests:        2,
		Features:      []string{"1 giường đôi", "Tầm nhìn đẹp", "Nội thất hiện đại", "Minibar"},
		Popular:       false,
		Category:      CategoryStandard,
	},
	{
		ID:            5,
		Name:          "Deluxe Ocean View",
		Price:         "2,500,000",
		OriginalPrice: "3,000,000",
		Size:          "40m²",
		Guests:        2,
		Features:      []string{"1 giường đôi lớn", "Tầm nhìn biển", "Ban công riêng", "Minibar cao cấp"},
		Popular:       true,
		Category:      CategoryDeluxe,
	},
	{
		ID:            6,
		Name:          "Executive Suite",
		Price:         "3,500,000",
		OriginalPrice: "4,200,000",
		Size:          "55m²",
		Guests:        3,
		Features:      []string{"Phòng ngủ riêng", "Phòng khách", "Bàn làm việc", "Minibar đầy đủ"},
		Popular:       false,
		Category:      CategorySuite,
	},
	{
		ID:            7,
		Name:          "Presidential Suite",
		Price:         "6,500,000",
		OriginalPrice: "7,500,000",
		Size:          "100m²",
		Guests:        4,
		Features:      []string{"2 phòng ngủ", "Phòng khách sang trọng", "Bếp đầy đủ", "Phòng tắm jacuzzi"},
		Popular:       true,
		Category:      CategorySuite,
	},
	{
		ID:            9,
		Name:          "Standard Twin",
		Price:         "1,600,000",
		OriginalPrice: "1,900,000",
		Size:          "28m²",
		Guests:        2,
		Features:      []string{"2 giường đơn", "Phù hợp bạn bè", "Tầm nhìn đẹp", "Minibar"},
		Popular:       false,
		Category:      CategoryStandard,
	},
}
