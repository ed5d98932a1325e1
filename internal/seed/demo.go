// Package seed provides the built-in demo dataset and helpers that generate
// additional demo content. Every function returns fresh values, so callers
// may mutate what they get back.
package seed

import "gamechanger/internal/models"

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

// FallbackPosts is the fixed feed shown when the catalog cannot be loaded.
func FallbackPosts() []models.FeedPost {
	return []models.FeedPost{
		{
			Post: models.Post{
				ID:        1,
				Type:      models.MediaVideo,
				Content:   "Training session highlights! Working on my finishing and technique. The grind never stops! 💪⚽",
				Media:     "/videos/sam_training.mp4",
				Likes:     234,
				Comments:  45,
				Shares:    12,
				Timestamp: "2 hours ago",
			},
			User: models.AuthorRef{
				ID:       "demo-athlete-1",
				Name:     "Sam Daniel",
				Username: "@sxm_leo",
				Avatar:   "/avatars/sam.png",
				Sport:    "Football",
				Position: "Forward",
			},
		},
		{
			Post: models.Post{
				ID:        2,
				Type:      models.MediaImage,
				Content:   "Match day! Ready to give my best performance. The crowd energy is incredible! 🔥⚽",
				Media:     "/images/priya_match.jpg",
				Likes:     456,
				Comments:  78,
				Shares:    23,
				Timestamp: "1 day ago",
			},
			User: models.AuthorRef{
				ID:       "demo-athlete-2",
				Name:     "Priya Patel",
				Username: "@priya_cricket",
				Avatar:   "/avatars/priya.png",
				Sport:    "Cricket",
				Position: "All-rounder",
			},
		},
	}
}

// DemoCatalog is the built-in set of demo athletes and their posts.
func DemoCatalog() *models.Catalog {
	return &models.Catalog{Athletes: []models.Athlete{
		{
			ID:           "demo-athlete-1",
			Name:         "Sam Daniel",
			Username:     "@sxm_leo",
			Avatar:       "/avatars/sam.png",
			CoverImage:   "/covers/sam.jpg",
			Sport:        "Football",
			Position:     "Forward",
			Location:     "Chennai, Tamil Nadu",
			Level:        "State",
			JoinDate:     "March 2023",
			Bio:          "Forward with an eye for goal. Training every day to make the state squad.",
			Age:          19,
			Height:       "5'10\"",
			Weight:       "68 kg",
			Coach:        "Coach Rajesh Kumar",
			Experience:   "6 years",
			CareerStart:  "2018",
			StrongFoot:   "Right",
			Fitness:      "Excellent",
			Achievements: []string{"District Top Scorer 2023", "Best Forward, Chennai Youth League"},
			Clubs:        []string{"Chennai City Youth FC"},
			Stats:        models.ProfileStats{Followers: 1520, Following: 210, Posts: 3, ProfileViews: 1042},
			GameStats: map[string]string{
				"matchesPlayed":   "48",
				"goals":           "31",
				"assists":         "12",
				"shotsOnTarget":   "64%",
				"passingAccuracy": "78%",
				"yellowCards":     "3",
				"redCards":        "0",
			},
			Posts: []models.Post{
				{
					ID:        101,
					Type:      models.MediaVideo,
					Content:   "Training session highlights! Working on my finishing and technique. The grind never stops! 💪⚽",
					Media:     "/videos/sam_training.mp4",
					Likes:     234,
					Comments:  45,
					Shares:    12,
					Timestamp: "2 hours ago",
				},
				{
					ID:        102,
					Type:      models.MediaImage,
					Content:   "Hat-trick in the league semi-final. Proud of the whole squad!",
					Media:     "/images/sam_hattrick.jpg",
					Likes:     512,
					Comments:  88,
					Shares:    40,
					Timestamp: "3 days ago",
				},
			},
		},
		{
			ID:           "demo-athlete-2",
			Name:         "Priya Patel",
			Username:     "@priya_cricket",
			Avatar:       "/avatars/priya.png",
			CoverImage:   "/covers/priya.jpg",
			Sport:        "Cricket",
			Position:     "All-rounder",
			Location:     "Ahmedabad, Gujarat",
			Level:        "District",
			JoinDate:     "January 2023",
			Bio:          "Cricket enthusiast aiming for national level",
			Age:          20,
			Height:       "5'6\"",
			Weight:       "55 kg",
			Coach:        "Meera Gupta",
			Experience:   "8 years",
			CareerStart:  "2016",
			Fitness:      "Good",
			Achievements: []string{"Top Scorer 2023", "MVP Award"},
			Clubs:        []string{"Ahmedabad Cricket Club"},
			Stats:        models.ProfileStats{Followers: 856, Following: 180, Posts: 2, ProfileViews: 970},
			GameStats: map[string]string{
				"matchesPlayed":  "36",
				"runsScored":     "1184",
				"battingAverage": "38.2",
				"highestScore":   "103*",
				"wicketsTaken":   "27",
				"bestBowling":    "4/21",
				"economyRate":    "5.4",
				"catches":        "14",
			},
			Posts: []models.Post{
				{
					ID:        201,
					Type:      models.MediaImage,
					Content:   "Match day! Ready to give my best performance. The crowd energy is incredible! 🔥⚽",
					Media:     "/images/priya_match.jpg",
					Likes:     456,
					Comments:  78,
					Shares:    23,
					Timestamp: "1 day ago",
				},
				{
					ID:        202,
					Type:      models.MediaVideo,
					Content:   "Nets session before the district final. Working on the cover drive.",
					Media:     "/videos/priya_nets.mp4",
					Likes:     198,
					Comments:  21,
					Shares:    9,
					Timestamp: "5 hours ago",
				},
			},
		},
		{
			ID:           "demo-athlete-3",
			Name:         "Arjun Singh",
			Username:     "@arjun_kabaddi",
			Avatar:       "/avatars/arjun.png",
			Sport:        "Kabaddi",
			Position:     "Raider",
			Location:     "Delhi, Delhi",
			Level:        "National",
			JoinDate:     "August 2022",
			Bio:          "Professional kabaddi player representing Delhi",
			Age:          23,
			Experience:   "10 years",
			Fitness:      "Excellent",
			Achievements: []string{"National Championship 2023", "Best Raider"},
			Stats:        models.ProfileStats{Followers: 2341, Following: 302, Posts: 1, ProfileViews: 3120},
			GameStats: map[string]string{
				"matchesPlayed":   "72",
				"totalPoints":     "684",
				"successfulRaids": "512",
				"raidSuccessRate": "61%",
				"superRaids":      "18",
				"tacklePoints":    "94",
				"bonusPoints":     "78",
			},
			Posts: []models.Post{
				{
					ID:        301,
					Type:      models.MediaVideo,
					Content:   "Super raid in the nationals quarter-final. Four points in one go!",
					Media:     "/videos/arjun_raid.mp4",
					Likes:     890,
					Comments:  132,
					Shares:    77,
					Timestamp: "1 week ago",
				},
			},
		},
		{
			ID:           "demo-athlete-4",
			Name:         "Sneha Reddy",
			Username:     "@sneha_volleyball",
			Avatar:       "/avatars/sneha.png",
			Sport:        "Volleyball",
			Position:     "Spiker",
			Location:     "Hyderabad, Telangana",
			Level:        "State",
			JoinDate:     "May 2023",
			Bio:          "Volleyball player with strong attacking skills",
			Age:          18,
			Achievements: []string{"State Championship 2023"},
			Stats:        models.ProfileStats{Followers: 678, Following: 145, Posts: 1, ProfileViews: 540},
			Posts: []models.Post{
				{
					ID:        401,
					Type:      models.MediaImage,
					Content:   "State champions! Thank you to everyone who came out to support us 🏐",
					Media:     "/images/sneha_trophy.jpg",
					Likes:     321,
					Comments:  54,
					Shares:    18,
					Timestamp: "30 minutes ago",
				},
			},
		},
	}}
}

// Notifications is the inbox every viewer starts with.
func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID:          1,
			Type:        models.NotificationLike,
			User:        &models.Actor{Name: "Priya Patel", Avatar: placeholderAvatar, Username: "@priya_cricket"},
			Content:     "liked your training video",
			Timestamp:   "2 minutes ago",
			PostPreview: "Training session highlights from yesterday...",
		},
		{
			ID:        2,
			Type:      models.NotificationFollow,
			User:      &models.Actor{Name: "Coach Rajesh Kumar", Avatar: placeholderAvatar, Username: "@coach_rajesh"},
			Content:   "started following you",
			Timestamp: "1 hour ago",
		},
		{
			ID:          3,
			Type:        models.NotificationComment,
			User:        &models.Actor{Name: "Arjun Singh", Avatar: placeholderAvatar, Username: "@arjun_kabaddi"},
			Content:     "commented on your post",
			Comment:     "Great technique! Keep it up 👏",
			Timestamp:   "3 hours ago",
			Read:        true,
			PostPreview: "Match day! Ready to give my best...",
		},
		{
			ID:        4,
			Type:      models.NotificationOpportunity,
			User:      &models.Actor{Name: "Mumbai FC Academy", Avatar: placeholderAvatar, Username: "@mumbai_fc"},
			Content:   "sent you a trial opportunity",
			Timestamp: "1 day ago",
			Read:      true,
		},
		{
			ID:        5,
			Type:      models.NotificationAchievement,
			Content:   "You reached 1000 profile views!",
			Timestamp: "2 days ago",
			Read:      true,
		},
		{
			ID:        6,
			Type:      models.NotificationMessage,
			User:      &models.Actor{Name: "Sports Sponsor Connect", Avatar: placeholderAvatar, Username: "@sponsor_connect"},
			Content:   "sent you a message about sponsorship",
			Timestamp: "3 days ago",
			Read:      true,
		},
	}
}

const cardAvatar = "/placeholder.svg?height=60&width=60"

// AthleteDirectory lists the athletes shown on the discovery page.
func AthleteDirectory() []models.AthleteCard {
	return []models.AthleteCard{
		{
			ID: 1, Name: "Rahul Sharma", Username: "@rahul_striker", Avatar: cardAvatar,
			Sport: "Football", Position: "Forward", Location: "Mumbai, Maharashtra", Level: "State",
			Followers: 1234, Achievements: []string{"District Champion 2023", "Best Player Award"},
			Bio: "Passionate footballer with 8 years of experience",
		},
		{
			ID: 2, Name: "Priya Patel", Username: "@priya_cricket", Avatar: cardAvatar,
			Sport: "Cricket", Position: "All-rounder", Location: "Ahmedabad, Gujarat", Level: "District",
			Followers: 856, Achievements: []string{"Top Scorer 2023", "MVP Award"},
			Bio: "Cricket enthusiast aiming for national level",
		},
		{
			ID: 3, Name: "Arjun Singh", Username: "@arjun_kabaddi", Avatar: cardAvatar,
			Sport: "Kabaddi", Position: "Raider", Location: "Delhi, Delhi", Level: "National",
			Followers: 2341, Achievements: []string{"National Championship 2023", "Best Raider"},
			Bio: "Professional kabaddi player representing Delhi",
		},
		{
			ID: 4, Name: "Sneha Reddy", Username: "@sneha_volleyball", Avatar: cardAvatar,
			Sport: "Volleyball", Position: "Spiker", Location: "Hyderabad, Telangana", Level: "State",
			Followers: 678, Achievements: []string{"State Championship 2023"},
			Bio: "Volleyball player with strong attacking skills",
		},
	}
}

// ScoutDirectory lists the scouts and coaches shown on the discovery page.
func ScoutDirectory() []models.ScoutCard {
	return []models.ScoutCard{
		{
			ID: 1, Name: "Coach Rajesh Kumar", Username: "@coach_rajesh", Avatar: cardAvatar,
			Club: "Mumbai FC Academy", Specialization: "Football", Experience: "15+ years",
			Location: "Mumbai, Maharashtra", AthletesDiscovered: 45,
			Bio: "Experienced football coach specializing in youth development",
		},
		{
			ID: 2, Name: "Meera Gupta", Username: "@scout_meera", Avatar: cardAvatar,
			Club: "Cricket Excellence Academy", Specialization: "Cricket", Experience: "10+ years",
			Location: "Bangalore, Karnataka", AthletesDiscovered: 32,
			Bio: "Cricket scout with focus on finding emerging talent",
		},
		{
			ID: 3, Name: "Vikram Yadav", Username: "@vikram_scout", Avatar: cardAvatar,
			Club: "Pro Kabaddi Scouts", Specialization: "Kabaddi", Experience: "8+ years",
			Location: "Jaipur, Rajasthan", AthletesDiscovered: 28,
			Bio: "Kabaddi talent scout for professional leagues",
		},
	}
}

// Chats lists the conversations in the messages sidebar.
func Chats() []models.Chat {
	return []models.Chat{
		{ID: 1, Name: "Coach Rajesh Kumar", Avatar: placeholderAvatar, LastMessage: "I'm interested in your football skills. Would you like to discuss opportunities?", Timestamp: "2m ago", Unread: 2, Type: "scout", Online: true},
		{ID: 2, Name: "Mumbai FC Academy", Avatar: placeholderAvatar, LastMessage: "We have trials next week. Are you available?", Timestamp: "1h ago", Type: "scout"},
		{ID: 3, Name: "Priya Patel", Avatar: placeholderAvatar, LastMessage: "Great match yesterday! Keep it up 👏", Timestamp: "3h ago", Type: "athlete", Online: true},
		{ID: 4, Name: "Sports Sponsor Connect", Avatar: placeholderAvatar, LastMessage: "We'd like to discuss sponsorship opportunities with you.", Timestamp: "1d ago", Unread: 1, Type: "sponsor"},
	}
}

// Thread is the sample conversation shown for an open chat.
func Thread() []models.Message {
	return []models.Message{
		{ID: 1, SenderID: "1", SenderName: "Coach Rajesh Kumar", Message: "Hi Rahul! I've been following your progress and I'm really impressed with your skills on the field.", Timestamp: "10:30 AM"},
		{ID: 2, SenderID: "me", SenderName: "Me", Message: "Thank you so much! That means a lot coming from you.", Timestamp: "10:32 AM", IsOwn: true},
		{ID: 3, SenderID: "1", SenderName: "Coach Rajesh Kumar", Message: "I'm interested in your football skills. Would you like to discuss opportunities?", Timestamp: "10:35 AM"},
		{ID: 4, SenderID: "me", SenderName: "Me", Message: "I'd love to hear more about what opportunities you have in mind.", Timestamp: "10:37 AM", IsOwn: true},
		{ID: 5, SenderID: "1", SenderName: "Coach Rajesh Kumar", Message: "We have a youth development program starting next month. I think you'd be a great fit. Can we schedule a call to discuss details?", Timestamp: "10:40 AM"},
	}
}
