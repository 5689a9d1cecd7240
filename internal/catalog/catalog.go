// Package catalog holds the fixed accommodation catalog and the filter/sort
// engine that turns search criteria into an ordered result list.  The
// catalog is static seed data: it is created once at load time and never
// mutated, so reads need no locking.
package catalog

// PetType categorizes which animals an accommodation accepts.
type PetType string

const (
	PetDog   PetType = "dog"
	PetCat   PetType = "cat"
	PetBird  PetType = "bird"
	PetSmall PetType = "small"
	PetAll   PetType = "all"
)

// Accommodation is one catalog record.  Prices are nightly rates in won.
type Accommodation struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	PetTypes      []PetType `json:"pet_types"`
	Amenities     []string  `json:"amenities"`
	PricePerNight int       `json:"price_per_night"`
	Rating        float64   `json:"rating"`
	ImageURL      string    `json:"image_url"`
	MaxPets       int       `json:"max_pets"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
}

// All returns the full catalog in seed order.  The returned slice is a copy;
// the underlying records are shared and must not be modified.
func All() []Accommodation {
	out := make([]Accommodation, len(accommodations))
	copy(out, accommodations)
	return out
}

// ByID returns the catalog record with the given id, or false when no such
// record exists.
func ByID(id int) (Accommodation, bool) {
	for _, a := range accommodations {
		if a.ID == id {
			return a, true
		}
	}
	return Accommodation{}, false
}

var accommodations = []Accommodation{
	{
		ID:       1,
		Name:     "코지 펫 리조트",
		Location: "제주도, 서귀포시",
		Description: "넓은 마당과 함께하는 프라이빗 숙소입니다. 반려견이 자유롭게 뛰어놀 수 있는 공간과 함께 편안한 휴식을 제공합니다. " +
			"제주도의 아름다운 자연을 만끽하며 특별한 시간을 보내세요.",
		PetTypes:      []PetType{PetDog, PetCat},
		Amenities:     []string{"WiFi", "전용 정원", "무료 주차", "반려동물 용품", "산책로", "BBQ 시설"},
		PricePerNight: 150000,
		Rating:        4.9,
		ImageURL:      "https://images.unsplash.com/photo-1592901147824-212145b050cf?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "064-123-4567",
		Email:         "cozy@petresort.com",
	},
	{
		ID:            2,
		Name:          "럭셔리 도그 하우스",
		Location:      "강원도, 강릉시",
		Description:   "럭셔리한 인테리어와 함께하는 프리미엄 반려동물 숙소입니다. 대형견도 환영하며, 전문 펫시터 서비스도 이용 가능합니다.",
		PetTypes:      []PetType{PetDog},
		Amenities:     []string{"WiFi", "오션뷰", "펫시터 서비스", "무료 주차", "반려동물 수영장", "24시간 컨시어지"},
		PricePerNight: 250000,
		Rating:        5.0,
		ImageURL:      "https://images.unsplash.com/photo-1651571473498-209522176a7e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       2,
		Phone:         "033-456-7890",
		Email:         "luxury@doghouse.com",
	},
	{
		ID:            3,
		Name:          "캣 프렌들리 아파트",
		Location:      "서울, 강남구",
		Description:   "고양이 친화적인 공간 디자인으로 꾸며진 도심 속 휴식처입니다.",
		PetTypes:      []PetType{PetCat},
		Amenities:     []string{"WiFi", "캣타워", "스크래처", "무료 주차", "조용한 환경"},
		PricePerNight: 120000,
		Rating:        4.8,
		ImageURL:      "https://images.unsplash.com/photo-1587280963766-6f31d3647a1f?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       2,
		Phone:         "02-789-0123",
		Email:         "catfriendly@apartment.com",
	},
	{
		ID:            4,
		Name:          "포레스트 펫 코티지",
		Location:      "경기도, 가평군",
		Description:   "숲 속에 위치한 아늑한 펫 코티지입니다. 모든 종류의 반려동물을 환영합니다.",
		PetTypes:      []PetType{PetAll},
		Amenities:     []string{"WiFi", "숲길 산책로", "개울", "무료 주차", "반려동물 놀이터", "캠프파이어"},
		PricePerNight: 180000,
		Rating:        4.7,
		ImageURL:      "https://images.unsplash.com/photo-1760434875920-2b7a79ea163a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       4,
		Phone:         "031-234-5678",
		Email:         "forest@petcottage.com",
	},
	{
		ID:            5,
		Name:          "버드 프렌들리 스튜디오",
		Location:      "경기도, 수원시",
		Description:   "조용하고 채광이 좋은 조류 친화적 숙소입니다. 새들이 편안하게 지낼 수 있도록 설계되었습니다.",
		PetTypes:      []PetType{PetBird},
		Amenities:     []string{"WiFi", "조용한 환경", "우수한 환기", "자연광", "무료 주차"},
		PricePerNight: 90000,
		Rating:        4.6,
		ImageURL:      "https://images.unsplash.com/photo-1663999082401-2bb508fab2e2?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "031-567-8901",
		Email:         "bird@studio.com",
	},
	{
		ID:            6,
		Name:          "스몰 펫 가든 하우스",
		Location:      "충청남도, 천안시",
		Description:   "소형 반려동물을 위한 안전한 정원과 실내놀이 공간이 있는 숙소입니다.",
		PetTypes:      []PetType{PetSmall},
		Amenities:     []string{"WiFi", "안전한 정원", "실내 놀이공간", "무료 주차"},
		PricePerNight: 100000,
		Rating:        4.8,
		ImageURL:      "https://images.unsplash.com/photo-1674513235396-6a1d91aae4f1?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       5,
		Phone:         "041-890-1234",
		Email:         "smallpet@garden.com",
	},
	{
		ID:            7,
		Name:          "해운대 펫 리조트",
		Location:      "부산광역시, 해운대구",
		Description:   "해변과 인접한 프리미엄 펫 리조트입니다. 반려동물과 함께 바다를 즐길 수 있습니다.",
		PetTypes:      []PetType{PetDog, PetCat},
		Amenities:     []string{"WiFi", "전용 비치", "펫 수영장", "무료 주차"},
		PricePerNight: 280000,
		Rating:        4.9,
		ImageURL:      "https://images.unsplash.com/photo-1571896349842-33c89424de2d?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       2,
		Phone:         "051-123-4567",
		Email:         "haeundae@petresort.com",
	},
	{
		ID:            8,
		Name:          "송도 펫 호텔",
		Location:      "인천광역시, 연수구",
		Description:   "센트럴파크와 가까운 현대식 도심형 펫 호텔입니다.",
		PetTypes:      []PetType{PetDog, PetCat, PetSmall},
		Amenities:     []string{"WiFi", "공원 인접", "펫 스파", "무료 주차"},
		PricePerNight: 160000,
		Rating:        4.7,
		ImageURL:      "https://images.unsplash.com/photo-1611892440504-42a792e24d32?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "032-456-7890",
		Email:         "songdo@pethotel.com",
	},
	{
		ID:            9,
		Name:          "팔공산 힐링 펜션",
		Location:      "대구광역시, 동구",
		Description:   "반려견과 함께 산 속 자연을 즐길 수 있는 힐링 펜션입니다.",
		PetTypes:      []PetType{PetDog, PetCat},
		Amenities:     []string{"WiFi", "등산로", "마당", "무료 주차"},
		PricePerNight: 130000,
		Rating:        4.6,
		ImageURL:      "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       2,
		Phone:         "053-789-0123",
		Email:         "palgong@pension.com",
	},
	{
		ID:            10,
		Name:          "전주 한옥 펫 스테이",
		Location:      "전라북도, 전주시",
		Description:   "한옥 감성과 반려동물 친화적 환경이 조화를 이룬 숙소입니다.",
		PetTypes:      []PetType{PetDog, PetCat, PetSmall},
		Amenities:     []string{"WiFi", "전통 한옥", "넓은 마당", "무료 주차"},
		PricePerNight: 140000,
		Rating:        4.8,
		ImageURL:      "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "063-234-5678",
		Email:         "jeonju@hanok.com",
	},
	{
		ID:            11,
		Name:          "여수 오션뷰 빌라",
		Location:      "전라남도, 여수시",
		Description:   "바다가 한눈에 보이는 오션뷰 펫 프렌들리 빌라입니다.",
		PetTypes:      []PetType{PetDog, PetCat},
		Amenities:     []string{"WiFi", "오션뷰 테라스", "해변 접근", "무료 주차", "조식 제공"},
		PricePerNight: 200000,
		Rating:        4.9,
		ImageURL:      "https://images.unsplash.com/photo-1582719508461-905c673771fd?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       2,
		Phone:         "061-567-8901",
		Email:         "yeosu@villa.com",
	},
	{
		ID:            12,
		Name:          "경주 역사공원 펫 하우스",
		Location:      "경상북도, 경주시",
		Description:   "경주의 주요 관광지와 가까운 반려동물 친화적 숙소입니다.",
		PetTypes:      []PetType{PetDog, PetCat, PetSmall},
		Amenities:     []string{"WiFi", "정원", "관광지 인접", "무료 주차"},
		PricePerNight: 110000,
		Rating:        4.7,
		ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       4,
		Phone:         "054-890-1234",
		Email:         "gyeongju@house.com",
	},
	{
		ID:            13,
		Name:          "속초 설악 펫 캠핑장",
		Location:      "강원도, 속초시",
		Description:   "설악산 자락에 위치한 반려동물 동반 캠핑장입니다.",
		PetTypes:      []PetType{PetAll},
		Amenities:     []string{"WiFi", "캠핑 시설", "계곡", "무료 주차"},
		PricePerNight: 80000,
		Rating:        4.5,
		ImageURL:      "https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       5,
		Phone:         "033-123-4567",
		Email:         "sokcho@camping.com",
	},
	{
		ID:            14,
		Name:          "남이섬 펫 카페 스테이",
		Location:      "강원도, 춘천시",
		Description:   "1층은 펫 카페, 2층은 숙소로 운영되는 독특한 구조의 펫 스테이입니다.",
		PetTypes:      []PetType{PetDog, PetCat, PetBird, PetSmall},
		Amenities:     []string{"WiFi", "펫 카페", "관광지 인접", "무료 주차"},
		PricePerNight: 120000,
		Rating:        4.6,
		ImageURL:      "https://images.unsplash.com/photo-1554118811-1e0d58224f24?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "033-456-7890",
		Email:         "nami@cafe.com",
	},
	{
		ID:            15,
		Name:          "담양 죽녹원 펫 스테이",
		Location:      "전라남도, 담양군",
		Description:   "죽녹원 인근에서 자연을 즐길 수 있는 아늑한 펫 스테이입니다.",
		PetTypes:      []PetType{PetDog, PetCat, PetSmall},
		Amenities:     []string{"WiFi", "대나무숲 인접", "정원", "무료 주차"},
		PricePerNight: 95000,
		Rating:        4.7,
		ImageURL:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?crop=entropy&cs=tinysrgb&fit=max&fm=jpg",
		MaxPets:       3,
		Phone:         "061-789-0123",
		Email:         "damyang@stay.com",
	},
}
