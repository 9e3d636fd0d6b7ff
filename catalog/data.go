package catalog

// Attractions is the tourism dataset. Category and region values match the
// filter buttons: nature, culture, adventure, beaches × europe, asia,
// americas, africa, oceania.
var Attractions = []Attraction{
	{
		ID:          1,
		Name:        "Santorini, Greece",
		Category:    "beaches",
		Region:      "europe",
		Rating:      4.9,
		Reviews:     2456,
		Price:       89,
		Duration:    "3 days",
		Image:       "https://images.pexels.com/photos/161815/santorini-oia-greece-island-161815.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Experience the stunning sunsets and whitewashed buildings of this Greek island paradise.",
		Highlights:  []string{"Sunset Views", "Traditional Architecture", "Wine Tasting", "Volcanic Beaches"},
		BestTime:    "April - October",
	},
	{
		ID:          2,
		Name:        "Machu Picchu, Peru",
		Category:    "culture",
		Region:      "americas",
		Rating:      4.8,
		Reviews:     3567,
		Price:       145,
		Duration:    "2 days",
		Image:       "https://images.pexels.com/photos/259967/pexels-photo-259967.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Discover the ancient Incan citadel high in the Andes Mountains.",
		Highlights:  []string{"Ancient Ruins", "Mountain Views", "Hiking Trails", "Cultural Heritage"},
		BestTime:    "May - September",
	},
	{
		ID:          3,
		Name:        "Mount Fuji, Japan",
		Category:    "nature",
		Region:      "asia",
		Rating:      4.7,
		Reviews:     1234,
		Price:       67,
		Duration:    "1 day",
		Image:       "https://images.pexels.com/photos/3408744/pexels-photo-3408744.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Witness the iconic sacred mountain and symbol of Japan.",
		Highlights:  []string{"Sacred Mountain", "Cherry Blossoms", "Hot Springs", "Traditional Culture"},
		BestTime:    "March - May",
	},
	{
		ID:          4,
		Name:        "Great Barrier Reef, Australia",
		Category:    "nature",
		Region:      "oceania",
		Rating:      4.9,
		Reviews:     1897,
		Price:       199,
		Duration:    "4 days",
		Image:       "https://images.pexels.com/photos/1001682/pexels-photo-1001682.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Explore the world's largest coral reef system with incredible marine life.",
		Highlights:  []string{"Coral Reefs", "Marine Life", "Snorkeling", "Diving"},
		BestTime:    "June - October",
	},
	{
		ID:          5,
		Name:        "Swiss Alps, Switzerland",
		Category:    "adventure",
		Region:      "europe",
		Rating:      4.8,
		Reviews:     1567,
		Price:       234,
		Duration:    "5 days",
		Image:       "https://images.pexels.com/photos/1402787/pexels-photo-1402787.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Experience breathtaking alpine scenery and world-class skiing.",
		Highlights:  []string{"Mountain Peaks", "Skiing", "Hiking", "Alpine Lakes"},
		BestTime:    "December - March",
	},
	{
		ID:          6,
		Name:        "Sahara Desert, Morocco",
		Category:    "adventure",
		Region:      "africa",
		Rating:      4.6,
		Reviews:     987,
		Price:       156,
		Duration:    "3 days",
		Image:       "https://images.pexels.com/photos/1578662/pexels-photo-1578662.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Journey through the vast sand dunes and experience nomadic culture.",
		Highlights:  []string{"Sand Dunes", "Camel Trekking", "Desert Camping", "Star Gazing"},
		BestTime:    "October - April",
	},
}

var TransportOptions = []TransportOption{
	{
		ID:       1,
		Type:     "car",
		Provider: "Premium Car Rental",
		Vehicle:  "BMW 3 Series",
		From:     "NYC Airport",
		To:       "Manhattan",
		Price:    1650,
		Duration: "45 min",
		Rating:   4.8,
		Reviews:  234,
		Image:    "https://images.pexels.com/photos/100650/pexels-photo-100650.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"GPS Navigation", "Insurance Included", "Fuel Included", "24/7 Support"},
		Capacity: 4,
	},
	{
		ID:       2,
		Type:     "bus",
		Provider: "City Express",
		Vehicle:  "Luxury Coach",
		From:     "New York",
		To:       "Washington DC",
		Price:    850,
		Duration: "4h 30m",
		Rating:   4.6,
		Reviews:  567,
		Image:    "https://images.pexels.com/photos/1373100/pexels-photo-1373100.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"WiFi", "Comfortable Seats", "Air Conditioning", "Snacks Available"},
		Capacity: 45,
	},
	{
		ID:       3,
		Type:     "train",
		Provider: "Rail Connect",
		Vehicle:  "High-Speed Train",
		From:     "Paris",
		To:       "London",
		Price:    180,
		Duration: "2h 15m",
		Rating:   4.9,
		Reviews:  1234,
		Image:    "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"High Speed", "Comfortable Seating", "Dining Car", "Scenic Views"},
		Capacity: 200,
	},
	{
		ID:       4,
		Type:     "transfer",
		Provider: "Airport Shuttle Pro",
		Vehicle:  "Mercedes Vito",
		From:     "Heathrow Airport",
		To:       "Central London",
		Price:    450,
		Duration: "1h 15m",
		Rating:   4.7,
		Reviews:  456,
		Image:    "https://images.pexels.com/photos/1007410/pexels-photo-1007410.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"Meet & Greet", "Luggage Assistance", "Flight Tracking", "Professional Driver"},
		Capacity: 8,
	},
	{
		ID:       5,
		Type:     "car",
		Provider: "Economy Rentals",
		Vehicle:  "Toyota Corolla",
		From:     "Downtown",
		To:       "Airport",
		Price:    650,
		Duration: "30 min",
		Rating:   4.5,
		Reviews:  789,
		Image:    "https://images.pexels.com/photos/1149831/pexels-photo-1149831.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"Fuel Efficient", "Easy Parking", "GPS Included", "Clean Interior"},
		Capacity: 4,
	},
	{
		ID:       6,
		Type:     "bus",
		Provider: "Tourist Express",
		Vehicle:  "Double Decker Bus",
		From:     "City Center",
		To:       "Tourist Attractions",
		Price:    280,
		Duration: "2h tour",
		Rating:   4.4,
		Reviews:  345,
		Image:    "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=600",
		Features: []string{"Audio Guide", "Hop On/Off", "Panoramic Views", "Multiple Languages"},
		Capacity: 70,
	},
}

var Events = []Event{
	{
		ID:          1,
		Title:       "Jazz Night at Blue Note",
		Category:    "music",
		City:        "new-york",
		Date:        "2025-02-15",
		Time:        "20:00",
		Location:    "Blue Note Jazz Club, NYC",
		Price:       45,
		Image:       "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Experience the best of jazz music with renowned artists in an intimate setting.",
		Rating:      4.8,
		Attendees:   156,
	},
	{
		ID:          2,
		Title:       "Broadway Musical: The Lion King",
		Category:    "theater",
		City:        "new-york",
		Date:        "2025-02-18",
		Time:        "19:30",
		Location:    "Minskoff Theatre, NYC",
		Price:       89,
		Image:       "https://images.pexels.com/photos/713149/pexels-photo-713149.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Disney's award-winning musical comes to life with stunning visuals and unforgettable songs.",
		Rating:      4.9,
		Attendees:   1200,
	},
	{
		ID:          3,
		Title:       "Modern Art Exhibition",
		Category:    "art",
		City:        "paris",
		Date:        "2025-02-20",
		Time:        "10:00",
		Location:    "Louvre Museum, Paris",
		Price:       25,
		Image:       "https://images.pexels.com/photos/1153213/pexels-photo-1153213.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Explore contemporary masterpieces from renowned artists around the world.",
		Rating:      4.7,
		Attendees:   89,
	},
	{
		ID:          4,
		Title:       "International Food Festival",
		Category:    "social",
		City:        "london",
		Date:        "2025-02-22",
		Time:        "12:00",
		Location:    "Hyde Park, London",
		Price:       15,
		Image:       "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Taste cuisines from around the world and meet fellow food enthusiasts.",
		Rating:      4.6,
		Attendees:   567,
	},
	{
		ID:          5,
		Title:       "Electronic Music Festival",
		Category:    "music",
		City:        "tokyo",
		Date:        "2025-02-25",
		Time:        "18:00",
		Location:    "Tokyo Dome, Tokyo",
		Price:       75,
		Image:       "https://images.pexels.com/photos/1763075/pexels-photo-1763075.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Dance the night away with top DJs and electronic music producers.",
		Rating:      4.8,
		Attendees:   2500,
	},
	{
		ID:          6,
		Title:       "Opera at Sydney Opera House",
		Category:    "theater",
		City:        "sydney",
		Date:        "2025-02-28",
		Time:        "19:00",
		Location:    "Sydney Opera House, Sydney",
		Price:       95,
		Image:       "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=600",
		Description: "Experience world-class opera in one of the world's most iconic venues.",
		Rating:      4.9,
		Attendees:   890,
	},
}

var Services = []SupportService{
	{
		ID:           1,
		Name:         "Maria Santos",
		Service:      "Professional Housekeeper",
		Category:     "cleaning",
		Location:     "New York, NY",
		Rating:       4.9,
		Reviews:      156,
		Price:        25,
		Availability: "Available now",
		Image:        "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "Experienced housekeeper with 8+ years of professional cleaning experience. Eco-friendly products available.",
		Skills:       []string{"Deep Cleaning", "Laundry", "Organization", "Eco-friendly"},
	},
	{
		ID:           2,
		Name:         "James Wilson",
		Service:      "Certified Babysitter",
		Category:     "childcare",
		Location:     "Los Angeles, CA",
		Rating:       4.8,
		Reviews:      98,
		Price:        18,
		Availability: "Available today",
		Image:        "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "Certified childcare professional with CPR training. Great with kids of all ages and experienced with special needs.",
		Skills:       []string{"CPR Certified", "First Aid", "Special Needs", "Educational Activities"},
	},
	{
		ID:           3,
		Name:         "Chef Antoine",
		Service:      "Personal Chef",
		Category:     "cooking",
		Location:     "Miami, FL",
		Rating:       4.9,
		Reviews:      203,
		Price:        45,
		Availability: "Book 24h ahead",
		Image:        "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "French-trained chef specializing in Mediterranean cuisine. Custom menus available for dietary restrictions.",
		Skills:       []string{"Mediterranean", "French Cuisine", "Dietary Restrictions", "Meal Prep"},
	},
	{
		ID:           4,
		Name:         "Sarah Johnson",
		Service:      "Pet Sitter & Walker",
		Category:     "pet-care",
		Location:     "Chicago, IL",
		Rating:       4.7,
		Reviews:      124,
		Price:        20,
		Availability: "Available now",
		Image:        "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "Loving pet sitter with experience caring for dogs, cats, and exotic pets. Overnight sitting available.",
		Skills:       []string{"Dog Walking", "Pet Sitting", "Overnight Care", "Pet Grooming"},
	},
	{
		ID:           5,
		Name:         "Mike Rodriguez",
		Service:      "Personal Trainer",
		Category:     "fitness",
		Location:     "Austin, TX",
		Rating:       4.8,
		Reviews:      87,
		Price:        35,
		Availability: "Available tomorrow",
		Image:        "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "Certified personal trainer specializing in weight loss and strength training. In-home and virtual sessions available.",
		Skills:       []string{"Weight Loss", "Strength Training", "Virtual Training", "Nutrition Coaching"},
	},
	{
		ID:           6,
		Name:         "David Chen",
		Service:      "Private Driver",
		Category:     "transport",
		Location:     "San Francisco, CA",
		Rating:       4.9,
		Reviews:      145,
		Price:        30,
		Availability: "Available now",
		Image:        "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=300",
		Description:  "Professional driver with luxury vehicle. Airport transfers, city tours, and long-distance trips available.",
		Skills:       []string{"Airport Transfer", "City Tours", "Long Distance", "Luxury Vehicle"},
	},
}

var Posts = []Post{
	{
		ID:       1,
		Author:   "Sarah Johnson",
		Location: "Tokyo, Japan",
		Avatar:   "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=100",
		Content:  "Just discovered the most amazing ramen shop in Shibuya! The broth is incredible and the atmosphere is so authentic. Would love to show fellow travelers around this area!",
		Image:    "https://images.pexels.com/photos/884596/pexels-photo-884596.jpeg?auto=compress&cs=tinysrgb&w=600",
		Likes:    24,
		Comments: 8,
		Time:     "2 hours ago",
	},
	{
		ID:       2,
		Author:   "Marco Rodriguez",
		Location: "Barcelona, Spain",
		Avatar:   "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=100",
		Content:  "Sunset at Park Güell never gets old! Looking for travel buddies to explore more of Gaudí's masterpieces. I know all the best spots and hidden gems in the city.",
		Image:    "https://images.pexels.com/photos/1388030/pexels-photo-1388030.jpeg?auto=compress&cs=tinysrgb&w=600",
		Likes:    31,
		Comments: 12,
		Time:     "5 hours ago",
	},
	{
		ID:       3,
		Author:   "Emma Chen",
		Location: "Bali, Indonesia",
		Avatar:   "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=100",
		Content:  "Rice terraces in Tegallalang are absolutely breathtaking! Perfect for sunrise photography. Planning to visit the traditional markets tomorrow - anyone want to join?",
		Image:    "https://images.pexels.com/photos/2387793/pexels-photo-2387793.jpeg?auto=compress&cs=tinysrgb&w=600",
		Likes:    45,
		Comments: 15,
		Time:     "1 day ago",
	},
}

var TravelBuddies = []TravelBuddy{
	{
		ID:              1,
		Name:            "Alex Thompson",
		Location:        "New York, USA",
		Avatar:          "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=100",
		Interests:       []string{"Photography", "Hiking", "Local Food"},
		NextDestination: "Iceland",
		Languages:       []string{"English", "Spanish"},
	},
	{
		ID:              2,
		Name:            "Lisa Kumar",
		Location:        "Mumbai, India",
		Avatar:          "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=100",
		Interests:       []string{"Culture", "Art", "Museums"},
		NextDestination: "Paris",
		Languages:       []string{"Hindi", "English", "French"},
	},
	{
		ID:              3,
		Name:            "Tom Mueller",
		Location:        "Berlin, Germany",
		Avatar:          "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=100",
		Interests:       []string{"History", "Architecture", "Nightlife"},
		NextDestination: "Prague",
		Languages:       []string{"German", "English", "Czech"},
	},
}

var MapLocations = []MapLocation{
	{
		ID:      1,
		Name:    "Eiffel Tower",
		Type:    "attractions",
		City:    "Paris",
		Country: "France",
		Rating:  4.8,
		Reviews: 25467,
		Lat:     48.8584,
		Lng:     2.2945,
		Image:   "https://images.pexels.com/photos/1388030/pexels-photo-1388030.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:      2,
		Name:    "Hotel Plaza Athénée",
		Type:    "hotels",
		City:    "Paris",
		Country: "France",
		Rating:  4.9,
		Reviews: 1234,
		Lat:     48.8655,
		Lng:     2.3034,
		Image:   "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:      3,
		Name:    "Le Comptoir du Relais",
		Type:    "restaurants",
		City:    "Paris",
		Country: "France",
		Rating:  4.7,
		Reviews: 567,
		Lat:     48.8506,
		Lng:     2.3387,
		Image:   "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		ID:      4,
		Name:    "Charles de Gaulle Airport",
		Type:    "airports",
		City:    "Paris",
		Country: "France",
		Rating:  4.2,
		Reviews: 8934,
		Lat:     49.0097,
		Lng:     2.5479,
		Image:   "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
}

// Packages are the recommended bundles offered in the booking wizard.
var Packages = []Package{
	{
		ID:         1,
		Title:      "Paris Getaway",
		Duration:   "5 days",
		Price:      1299,
		Rating:     4.8,
		Image:      "https://images.pexels.com/photos/1388030/pexels-photo-1388030.jpeg?auto=compress&cs=tinysrgb&w=600",
		Includes:   []string{"Flights", "Hotel", "Breakfast", "City Tour"},
		Highlights: []string{"Eiffel Tower", "Louvre Museum", "Seine Cruise"},
	},
	{
		ID:         2,
		Title:      "Tokyo Adventure",
		Duration:   "7 days",
		Price:      1899,
		Rating:     4.9,
		Image:      "https://images.pexels.com/photos/3408744/pexels-photo-3408744.jpeg?auto=compress&cs=tinysrgb&w=600",
		Includes:   []string{"Flights", "Hotel", "JR Pass", "Cultural Tours"},
		Highlights: []string{"Mount Fuji", "Shibuya Crossing", "Traditional Temples"},
	},
	{
		ID:         3,
		Title:      "Bali Retreat",
		Duration:   "6 days",
		Price:      999,
		Rating:     4.7,
		Image:      "https://images.pexels.com/photos/2387793/pexels-photo-2387793.jpeg?auto=compress&cs=tinysrgb&w=600",
		Includes:   []string{"Flights", "Villa", "Spa", "Island Tours"},
		Highlights: []string{"Rice Terraces", "Beach Relaxation", "Spa Treatments"},
	},
}
