package booking

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hotelcart/constants"
)

// Ngưỡng tương đồng để coi một từ khóa gõ sai chính tả là khớp
const similarityThreshold = 0.7

// RoomFilter là bộ lọc phòng phía khách
type RoomFilter struct {
	Keyword  string `json:"keyword,omitempty"`
	Adults   *int   `json:"adults,omitempty"`
	Children *int   `json:"children,omitempty"`
	BedType  string `json:"bedType,omitempty"`
}

func (f RoomFilter) IsZero() bool {
	return f.Keyword == "" && f.Adults == nil && f.Children == nil && f.BedType == ""
}

// FilterResult là danh sách phòng sau khi lọc cùng trạng thái hiển thị
type FilterResult struct {
	Offers       []Offer `json:"offers"`
	Availability string  `json:"availability"`
	Suggestion   string  `json:"suggestion,omitempty"`
}

// ApplyFilter lọc các phòng bán được. Khi không phòng nào khớp, trạng thái là
// no_match và Suggestion là tên loại phòng gần nhất với từ khóa.
func ApplyFilter(catalog *Catalog, filter RoomFilter) FilterResult {
	base := catalog.Availability()
	if base != constants.AvailabilityReady {
		return FilterResult{Offers: []Offer{}, Availability: base}
	}

	keyword := normalizeInput(filter.Keyword)
	bedType := normalizeInput(filter.BedType)
	matched := make([]Offer, 0, len(catalog.Offers()))
	for _, offer := range catalog.Offers() {
		room := offer.Room
		if filter.Adults != nil && room.Adults < *filter.Adults {
			continue
		}
		if filter.Children != nil && room.Children < *filter.Children {
			continue
		}
		if bedType != "" && !strings.Contains(normalizeInput(room.BedType), bedType) {
			continue
		}
		if keyword != "" && !matchesKeyword(keyword, room) {
			continue
		}
		matched = append(matched, offer)
	}

	if len(matched) == 0 {
		return FilterResult{
			Offers:       matched,
			Availability: constants.AvailabilityNoMatch,
			Suggestion:   suggestRoomName(keyword, catalog.Offers()),
		}
	}
	return FilterResult{Offers: matched, Availability: constants.AvailabilityReady}
}

// Chuẩn hóa chuỗi: bỏ dấu tiếng Việt, chữ thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func matchesKeyword(keyword string, room Room) bool {
	for _, name := range []string{room.RoomTypeName, room.RoomCategoryName} {
		normalized := normalizeInput(name)
		if normalized == "" {
			continue
		}
		if strings.Contains(normalized, keyword) {
			return true
		}
		for _, word := range strings.Fields(normalized) {
			if calculateSimilarity(keyword, word) >= similarityThreshold {
				return true
			}
		}
	}
	return false
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func suggestRoomName(keyword string, offers []Offer) string {
	if keyword == "" || len(offers) == 0 {
		return ""
	}
	names := make([]string, 0, len(offers))
	original := make(map[string]string, len(offers))
	for _, offer := range offers {
		key := normalizeInput(offer.Room.RoomTypeName)
		if key == "" {
			continue
		}
		if _, seen := original[key]; !seen {
			names = append(names, key)
			original[key] = offer.Room.RoomTypeName
		}
	}
	if len(names) == 0 {
		return ""
	}
	cm := closestmatch.New(names, []int{2, 3})
	return original[cm.Closest(keyword)]
}
