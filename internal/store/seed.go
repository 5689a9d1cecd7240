package store

import (
	"time"

	"github.com/petfriendly/petfriendly/internal/model"
)

// Seed community content shipped with the product.  Seed records have plain
// numeric ids (no "user_"/"comment_" prefix) and are therefore never
// deletable.  Timestamps are relative to now so the feed always looks
// recent, matching the source.

func daysAgo(now time.Time, d int) time.Time {
	return now.Add(-time.Duration(d) * 24 * time.Hour)
}

// AccommodationNames is the selectable list on the review form.
var AccommodationNames = []string{
	"제주 오션뷰 펫 리조트",
	"강릉 바다 애견 호텔",
	"속초 반려동물 펜션",
	"평창 힐링 펫 스테이",
	"경주 한옥 반려동물 숙소",
	"부산 해운대 펫 호텔",
	"여수 오션 펫 리조트",
	"남해 독일마을 애견 펜션",
	"가평 숲속 반려견 빌라",
	"포천 아트밸리 펫 스테이",
	"양평 강변 애견 캠핑장",
	"춘천 호수 반려동물 펜션",
	"태안 해변 펫 리조트",
	"보령 머드 애견 호텔",
	"안면도 자연 펫 스테이",
}

func seedReviews(now time.Time) []model.Review {
	return []model.Review{
		{
			ID: "1", UserID: "user1", AccommodationName: "제주 오션뷰 펫 리조트", Rating: 5,
			Title: "우리 댕댕이가 정말 좋아했어요! 🐕",
			Content: "제주도 여행 중 방문했는데 정말 최고였어요! 특히 전용 애견 수영장이 있어서 우리 골든리트리버 해피가 신나게 놀았습니다. " +
				"객실도 깔끔하고 반려동물 용품이 완비되어 있어서 편했어요. 주변에 산책로도 잘 되어있고, 직원분들도 친절하셨습니다. 다음에 꼭 다시 올게요!",
			Images: []string{
				"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=800",
				"https://images.unsplash.com/photo-1561037404-61cd46aa615b?w=800",
				"https://images.unsplash.com/photo-1576201836106-db1758fd1c97?w=800",
			},
			LikesCount: 42, CommentsCount: 8, CreatedAt: daysAgo(now, 2),
			Author: model.AuthorProfile{Username: "해피맘", ProfilePhotoURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200"},
		},
		{
			ID: "2", UserID: "user2", AccommodationName: "강릉 바다 애견 호텔", Rating: 5,
			Title: "바다뷰가 정말 환상적이에요!",
			Content: "강아지와 함께 바다를 보면서 힐링할 수 있는 곳이에요. 특히 일출이 정말 아름다웠고, 펜션 앞 해변에서 자유롭게 산책할 수 있어서 좋았습니다. " +
				"우리 시바견 코코가 모래사장에서 정말 행복해했어요. 조식도 맛있고, 반려견 간식도 서비스로 주셨어요!",
			Images: []string{
				"https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=800",
				"https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=800",
			},
			LikesCount: 38, CommentsCount: 6, CreatedAt: daysAgo(now, 5),
			Author: model.AuthorProfile{Username: "코코아빠", ProfilePhotoURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200"},
		},
		{
			ID: "3", UserID: "user3", AccommodationName: "가평 숲속 반려견 빌라", Rating: 4,
			Title: "자연 속에서 힐링하기 좋아요",
			Content: "서울에서 가까워서 주말에 다녀왔어요. 숲속에 위치해있어서 공기도 좋고 조용해서 힐링하기 딱 좋습니다. " +
				"우리 웰시코기 뭉치가 넓은 마당에서 마음껏 뛰어놀았어요. 다만 주변에 편의점이 좀 멀어서 미리 준비해가는 게 좋을 것 같아요. 그래도 전체적으로 만족스러운 여행이었습니다!",
			Images: []string{
				"https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=800",
				"https://images.unsplash.com/photo-1530281700549-e82e7bf110d6?w=800",
				"https://images.unsplash.com/photo-1552053831-71594a27632d?w=800",
			},
			LikesCount: 31, CommentsCount: 4, CreatedAt: daysAgo(now, 7),
			Author: model.AuthorProfile{Username: "뭉치사랑", ProfilePhotoURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200"},
		},
		{
			ID: "4", UserID: "user4", AccommodationName: "속초 반려동물 펜션", Rating: 5,
			Title: "대형견도 환영하는 곳! 강추합니다 💯",
			Content: "대형견 동반이 가능한 숙소를 찾기 힘든데, 여기는 우리 래브라도 초코를 정말 환영해주셨어요! 객실도 넓고, 전용 놀이터도 있어서 초코가 신나게 놀았습니다. " +
				"속초 관광지도 가까워서 여행하기 편했어요. 사장님도 반려견을 키우신다고 하셔서 더욱 믿음이 갔습니다. 최고예요!",
			Images:     []string{"https://images.unsplash.com/photo-1529472119196-cb724127a98e?w=800"},
			LikesCount: 56, CommentsCount: 12, CreatedAt: daysAgo(now, 10),
			Author: model.AuthorProfile{Username: "초코엄마", ProfilePhotoURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200"},
		},
		{
			ID: "5", UserID: "user5", AccommodationName: "경주 한옥 반려동물 숙소", Rating: 5,
			Title: "한옥에서의 특별한 경험",
			Content: "전통 한옥 스타일의 숙소인데, 반려동물 친화적으로 잘 꾸며져 있어요. 마당에서 우리 포메라니안 별이가 뛰어놀 수 있어서 좋았고, 한옥 특유의 운치도 느낄 수 있었습니다. " +
				"경주 관광지들도 근처에 있어서 편했어요. 밤에는 별도 보고, 정말 힐링되는 시간이었습니다.",
			Images: []string{
				"https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?w=800",
				"https://images.unsplash.com/photo-1574158622682-e40e69881006?w=800",
			},
			LikesCount: 45, CommentsCount: 7, CreatedAt: daysAgo(now, 14),
			Author: model.AuthorProfile{Username: "별이네", ProfilePhotoURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200"},
		},
		{
			ID: "6", UserID: "user6", AccommodationName: "여수 오션 펫 리조트", Rating: 4,
			Title: "야경이 아름다운 곳",
			Content: "여수 밤바다를 반려견과 함께 즐길 수 있어서 좋았어요. 우리 비숑 구름이와 함께 해변 산책도 하고, 객실에서 야경도 감상했습니다. " +
				"시설도 깔끔하고 좋았어요. 다만 성수기라 가격이 좀 비싸긴 했지만, 그만한 가치가 있었습니다.",
			Images:     []string{"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800"},
			LikesCount: 28, CommentsCount: 5, CreatedAt: daysAgo(now, 18),
			Author: model.AuthorProfile{Username: "구름파파", ProfilePhotoURL: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=200"},
		},
		{
			ID: "7", UserID: "user7", AccommodationName: "평창 힐링 펫 스테이", Rating: 5,
			Title: "겨울 여행 최고의 선택이었어요 ❄️",
			Content: "눈 내리는 평창에서 우리 허스키 바람이와 함께 환상적인 시간을 보냈어요! 넓은 마당에서 눈썰매도 타고, 따뜻한 온돌방에서 휴식도 취했습니다. " +
				"주변에 스키장도 있어서 겨울 스포츠도 즐기기 좋아요. 사진 찍기도 좋고, 정말 추천합니다!",
			Images: []string{
				"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=800",
				"https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=800",
				"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=800",
				"https://images.unsplash.com/photo-1517849845537-4d257902454a?w=800",
			},
			LikesCount: 67, CommentsCount: 15, CreatedAt: daysAgo(now, 21),
			Author: model.AuthorProfile{Username: "바람이와함께", ProfilePhotoURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200"},
		},
		{
			ID: "8", UserID: "user8", AccommodationName: "춘천 호수 반려동물 펜션", Rating: 4,
			Title: "호수뷰가 정말 예뻐요",
			Content: "춘천 호수가 바로 앞에 있어서 뷰가 정말 좋습니다. 우리 말티즈 순이와 호수 주변을 산책하면서 좋은 시간 보냈어요. " +
				"조용하고 평화로운 분위기라 힐링하기 딱 좋아요. 춘천 닭갈비도 가까워서 저녁에 포장해서 먹었어요!",
			Images:     []string{"https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=800"},
			LikesCount: 22, CommentsCount: 3, CreatedAt: daysAgo(now, 25),
			Author: model.AuthorProfile{Username: "순이집사", ProfilePhotoURL: "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=200"},
		},
	}
}

func seedComments(now time.Time) map[string][]model.Comment {
	return map[string][]model.Comment{
		"1": {
			{
				ID: "c1", ReviewID: "1", UserID: "user2",
				Content: "저도 다음 주에 예약했어요! 기대되네요 ㅎㅎ", CreatedAt: daysAgo(now, 1),
				Author: model.AuthorProfile{Username: "코코아빠"},
			},
			{
				ID: "c2", ReviewID: "1", UserID: "user3",
				Content: "사진 보니까 정말 좋아보이네요! 우리 강아지도 데려가고 싶어요", CreatedAt: daysAgo(now, 1),
				Author: model.AuthorProfile{Username: "뭉치사랑"},
			},
		},
		"4": {
			{
				ID: "c3", ReviewID: "4", UserID: "user1",
				Content: "대형견 환영하는 곳 찾기 힘든데 좋은 정보 감사합니다!", CreatedAt: daysAgo(now, 8),
				Author: model.AuthorProfile{Username: "해피맘"},
			},
		},
		"7": {
			{
				ID: "c4", ReviewID: "7", UserID: "user5",
				Content: "허스키는 눈에서 정말 좋아하죠! 부러워요 ㅠㅠ", CreatedAt: daysAgo(now, 20),
				Author: model.AuthorProfile{Username: "별이네"},
			},
		},
	}
}
