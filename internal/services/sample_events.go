package services

import "eventify/internal/domain"

// sampleEvents is the fixed dataset served when the remote API is unusable.
var sampleEvents = []domain.Event{
	{
		ID:           "1",
		Slug:         "summer-gala-2024",
		Title:        "Summer Gala 2024",
		Date:         "2024-07-15",
		Time:         "19:00",
		Description:  "Join us for an unforgettable evening of elegance, fine dining, and live entertainment at our annual Summer Gala. Experience world-class cuisine, networking opportunities, and performances by renowned artists in a stunning venue.",
		Location:     "Grand Ballroom, The Ritz-Carlton, New York",
		Category:     domain.CategoryCorporate,
		Price:        350,
		Image:        "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Elite Events Co.", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=EE"},
		Attendees:    420,
		MaxAttendees: 500,
		Featured:     true,
	},
	{
		ID:           "2",
		Slug:         "tech-innovation-summit",
		Title:        "Tech Innovation Summit",
		Date:         "2024-08-22",
		Time:         "09:00",
		Description:  "The premier technology conference bringing together industry leaders, innovators, and visionaries. Discover the latest trends in AI, blockchain, and sustainable tech through keynotes, workshops, and hands-on demos.",
		Location:     "Silicon Valley Convention Center, San Francisco",
		Category:     domain.CategoryCorporate,
		Price:        499,
		Image:        "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=800&q=80",
		Organizer:    domain.Organizer{Name: "TechVentures Inc.", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=TV"},
		Attendees:    1200,
		MaxAttendees: 1500,
		Featured:     true,
	},
	{
		ID:           "3",
		Slug:         "vintage-wine-tasting",
		Title:        "Vintage Wine Tasting Experience",
		Date:         "2024-06-28",
		Time:         "18:00",
		Description:  "Embark on a sensory journey through the world's finest vineyards. Sample rare vintages, learn from master sommeliers, and enjoy gourmet pairings in an intimate château setting.",
		Location:     "Château de Lumière, Napa Valley",
		Category:     domain.CategoryPrivateParties,
		Price:        175,
		Image:        "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Vino Elite", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=VE"},
		Attendees:    45,
		MaxAttendees: 60,
		Featured:     true,
	},
	{
		ID:           "4",
		Slug:         "luxury-wedding-expo",
		Title:        "Luxury Wedding Expo 2024",
		Date:         "2024-09-10",
		Time:         "10:00",
		Description:  "Discover your dream wedding at the most prestigious bridal showcase. Meet top designers, planners, florists, and photographers. Exclusive runway shows and complimentary champagne reception.",
		Location:     "The Plaza Hotel, New York",
		Category:     domain.CategoryWeddings,
		Price:        75,
		Image:        "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Bridal Dreams", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=BD"},
		Attendees:    800,
		MaxAttendees: 1000,
		Featured:     true,
	},
	{
		ID:           "5",
		Slug:         "jazz-night-exclusive",
		Title:        "Jazz Night: An Exclusive Evening",
		Date:         "2024-07-05",
		Time:         "20:00",
		Description:  "An intimate evening featuring Grammy-winning jazz artists in a historic speakeasy setting. Premium cocktails, fine dining, and unforgettable music.",
		Location:     "The Blue Note, Chicago",
		Category:     domain.CategoryConcerts,
		Price:        150,
		Image:        "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Rhythm & Soul Events", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=RS"},
		Attendees:    180,
		MaxAttendees: 200,
	},
	{
		ID:           "6",
		Slug:         "masterclass-photography",
		Title:        "Masterclass: Professional Photography",
		Date:         "2024-08-05",
		Time:         "10:00",
		Description:  "Learn from award-winning photographers in this intensive two-day workshop. Covering portrait, landscape, and commercial photography with hands-on sessions.",
		Location:     "Creative Arts Studio, Los Angeles",
		Category:     domain.CategoryWorkshops,
		Price:        299,
		Image:        "https://images.unsplash.com/photo-1542038784456-1ea8e935640e?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Lens Academy", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=LA"},
		Attendees:    25,
		MaxAttendees: 30,
	},
	{
		ID:           "7",
		Slug:         "charity-gala-children",
		Title:        "Children's Hope Charity Gala",
		Date:         "2024-10-12",
		Time:         "18:30",
		Description:  "An elegant evening supporting children's education worldwide. Silent auction, celebrity appearances, gourmet dinner, and live entertainment.",
		Location:     "Beverly Wilshire Hotel, Beverly Hills",
		Category:     domain.CategoryCorporate,
		Price:        500,
		Image:        "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Hope Foundation", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=HF"},
		Attendees:    350,
		MaxAttendees: 400,
	},
	{
		ID:           "8",
		Slug:         "startup-pitch-night",
		Title:        "Startup Pitch Night",
		Date:         "2024-07-25",
		Time:         "18:00",
		Description:  "Watch the next generation of innovators present their groundbreaking ideas to top investors. Networking, refreshments, and exclusive investment opportunities.",
		Location:     "WeWork HQ, San Francisco",
		Category:     domain.CategoryCorporate,
		Price:        50,
		Image:        "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800&q=80",
		Organizer:    domain.Organizer{Name: "Venture Hub", Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=VH"},
		Attendees:    150,
		MaxAttendees: 200,
	},
}

// SampleEvents returns a fresh copy of the fallback dataset.
func SampleEvents() []domain.Event {
	out := make([]domain.Event, len(sampleEvents))
	copy(out, sampleEvents)
	return out
}
