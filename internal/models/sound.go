package models

// Sound is an entry of the royalty-free ambience catalog
type Sound struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// RoyaltyFreeSounds returns the fixed catalog offered to the audio component
func RoyaltyFreeSounds() []Sound {
	return []Sound{
		{ID: "rain-forest", Name: "Rain Forest", URL: "https://www.soundjay.com/misc/sounds/rain-03.wav", Duration: "10:00"},
		{ID: "ocean-waves", Name: "Ocean Waves", URL: "https://www.soundjay.com/misc/sounds/ocean-wave-1.wav", Duration: "8:30"},
		{ID: "campfire", Name: "Campfire Crackling", URL: "https://www.soundjay.com/misc/sounds/campfire-1.wav", Duration: "5:45"},
		{ID: "wind-chimes", Name: "Wind Chimes", URL: "https://www.soundjay.com/misc/sounds/wind-chimes-1.wav", Duration: "3:20"},
	}
}
