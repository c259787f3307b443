package memory

import "github.com/besttime-service/internal/domain"

// referenceData - таблица эталонных локаций: несколько хорошо изученных
// городов в разных климатических зонах (тропическое побережье, муссонный
// субконтинент, пустыня, умеренная Европа, влажный субтропический остров,
// высокогорье). Значения подобраны вручную по климатическим сводкам.
func referenceData() []domain.ReferenceLocation {
	return []domain.ReferenceLocation{
		{
			Key:     "goa",
			Name:    "Goa",
			Country: "India",
			Lat:     15.2993,
			Lon:     74.1240,
			Climate: domain.ClimateProfile{
				AvgTemp: 27, MinTemp: 21, MaxTemp: 33, SeasonalVariation: 6,
				AnnualRainfall: 3000,
				WetMonths:      []int{6, 7, 8, 9},
				DryMonths:      []int{11, 12, 1, 2, 3},
				Monsoon:        domain.MonsoonHeavy,
				AvgHumidity:    75,
				SeasonalHumidity: [12]float64{
					65, 70, 85, 90, 85, 80, 75, 70, 65, 60, 60, 65,
				},
				SunshineHours: 8, UVIndex: 9,
				Flooding: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{12, 1, 2},
				ShoulderSeason: []int{11, 3},
				OffSeason:      []int{4, 5, 6, 7, 8, 9, 10},
				CrowdLevels: map[int]int{
					1: 7, 2: 6, 3: 6, 4: 3, 5: 2, 6: 1,
					7: 1, 8: 1, 9: 2, 10: 3, 11: 6, 12: 7,
				},
				PriceIndex: map[int]float64{
					1: 1.1, 2: 1.1, 3: 1.2, 4: 0.6, 5: 0.5, 6: 0.5,
					7: 0.5, 8: 0.5, 9: 0.6, 10: 0.8, 11: 1.0, 12: 1.15,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: false,
					7: false, 8: false, 9: false, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 2, Name: "Carnival", Impact: domain.ImpactPositive},
					{Month: 6, Name: "Monsoon Season", Impact: domain.ImpactNegative},
					{Month: 12, Name: "New Year Celebrations", Impact: domain.ImpactPositive},
				},
			},
		},
		{
			Key:     "mumbai",
			Name:    "Mumbai",
			Country: "India",
			Lat:     19.0760,
			Lon:     72.8777,
			Climate: domain.ClimateProfile{
				AvgTemp: 28, MinTemp: 16, MaxTemp: 36, SeasonalVariation: 8,
				AnnualRainfall: 2200,
				WetMonths:      []int{6, 7, 8, 9},
				DryMonths:      []int{11, 12, 1, 2, 3},
				Monsoon:        domain.MonsoonHeavy,
				AvgHumidity:    74,
				SeasonalHumidity: [12]float64{
					61, 65, 70, 75, 79, 84, 87, 85, 80, 70, 65, 62,
				},
				SunshineHours: 7, UVIndex: 8,
				ExtremeHeat: true, Flooding: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{11, 12, 1, 2},
				ShoulderSeason: []int{10, 3},
				OffSeason:      []int{4, 5, 6, 7, 8, 9},
				CrowdLevels: map[int]int{
					1: 8, 2: 7, 3: 5, 4: 3, 5: 2, 6: 1,
					7: 1, 8: 1, 9: 2, 10: 4, 11: 7, 12: 9,
				},
				PriceIndex: map[int]float64{
					1: 1.6, 2: 1.4, 3: 1.0, 4: 0.7, 5: 0.6, 6: 0.5,
					7: 0.5, 8: 0.5, 9: 0.6, 10: 0.8, 11: 1.2, 12: 1.5,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: false,
					7: false, 8: false, 9: false, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 8, Name: "Ganesh Chaturthi", Impact: domain.ImpactPositive},
					{Month: 10, Name: "Durga Puja", Impact: domain.ImpactPositive},
					{Month: 6, Name: "Monsoon Arrival", Impact: domain.ImpactNegative},
				},
			},
		},
		{
			Key:     "delhi",
			Name:    "Delhi",
			Country: "India",
			Lat:     28.7041,
			Lon:     77.1025,
			Climate: domain.ClimateProfile{
				AvgTemp: 24, MinTemp: 2, MaxTemp: 45, SeasonalVariation: 25,
				AnnualRainfall: 800,
				WetMonths:      []int{7, 8, 9},
				DryMonths:      []int{11, 12, 1, 2, 3, 4},
				Monsoon:        domain.MonsoonModerate,
				AvgHumidity:    62,
				SeasonalHumidity: [12]float64{
					55, 50, 45, 40, 45, 58, 75, 80, 70, 55, 50, 52,
				},
				SunshineHours: 8, UVIndex: 8,
				ExtremeHeat: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{11, 12, 1, 2, 3},
				ShoulderSeason: []int{10, 4},
				OffSeason:      []int{5, 6, 7, 8, 9},
				CrowdLevels: map[int]int{
					1: 8, 2: 9, 3: 7, 4: 5, 5: 3, 6: 2,
					7: 2, 8: 2, 9: 3, 10: 5, 11: 7, 12: 8,
				},
				PriceIndex: map[int]float64{
					1: 1.5, 2: 1.6, 3: 1.2, 4: 0.9, 5: 0.7, 6: 0.6,
					7: 0.6, 8: 0.6, 9: 0.7, 10: 0.9, 11: 1.2, 12: 1.4,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: false, 6: false,
					7: false, 8: false, 9: false, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 10, Name: "Diwali Season", Impact: domain.ImpactPositive},
					{Month: 3, Name: "Holi Festival", Impact: domain.ImpactPositive},
					{Month: 5, Name: "Extreme Heat Wave", Impact: domain.ImpactNegative},
				},
			},
		},
		{
			Key:     "kathmandu",
			Name:    "Kathmandu",
			Country: "Nepal",
			Lat:     27.7172,
			Lon:     85.3240,
			Climate: domain.ClimateProfile{
				AvgTemp: 18, MinTemp: 2, MaxTemp: 30, SeasonalVariation: 15,
				AnnualRainfall: 1400,
				WetMonths:      []int{6, 7, 8, 9},
				DryMonths:      []int{11, 12, 1, 2, 3},
				Monsoon:        domain.MonsoonModerate,
				AvgHumidity:    68,
				SeasonalHumidity: [12]float64{
					60, 58, 55, 60, 70, 80, 85, 85, 75, 65, 60, 58,
				},
				SunshineHours: 6, UVIndex: 7,
				Flooding: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{10, 11},
				ShoulderSeason: []int{3, 4, 9, 12},
				OffSeason:      []int{1, 2, 5, 6, 7, 8},
				CrowdLevels: map[int]int{
					1: 3, 2: 4, 3: 6, 4: 7, 5: 4, 6: 2,
					7: 2, 8: 2, 9: 4, 10: 8, 11: 7, 12: 4,
				},
				PriceIndex: map[int]float64{
					1: 0.7, 2: 0.8, 3: 1.1, 4: 1.2, 5: 0.9, 6: 0.6,
					7: 0.6, 8: 0.6, 9: 1.0, 10: 1.5, 11: 1.3, 12: 0.8,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
					7: false, 8: false, 9: true, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 10, Name: "Dashain Festival", Impact: domain.ImpactPositive},
					{Month: 4, Name: "Nepali New Year", Impact: domain.ImpactPositive},
					{Month: 7, Name: "Monsoon Season", Impact: domain.ImpactNegative},
				},
			},
		},
		{
			Key:     "paris",
			Name:    "Paris",
			Country: "France",
			Lat:     48.8566,
			Lon:     2.3522,
			Climate: domain.ClimateProfile{
				AvgTemp: 12, MinTemp: -2, MaxTemp: 26, SeasonalVariation: 18,
				AnnualRainfall: 650,
				WetMonths:      []int{10, 11, 12, 1},
				DryMonths:      []int{6, 7, 8},
				Monsoon:        domain.MonsoonNone,
				AvgHumidity:    78,
				SeasonalHumidity: [12]float64{
					81, 78, 73, 70, 69, 68, 68, 69, 73, 78, 81, 82,
				},
				SunshineHours: 4, UVIndex: 4,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{6, 7, 8},
				ShoulderSeason: []int{4, 5, 9, 10},
				OffSeason:      []int{11, 12, 1, 2, 3},
				CrowdLevels: map[int]int{
					1: 4, 2: 4, 3: 5, 4: 6, 5: 7, 6: 9,
					7: 9, 8: 8, 9: 7, 10: 6, 11: 4, 12: 6,
				},
				PriceIndex: map[int]float64{
					1: 0.8, 2: 0.8, 3: 0.9, 4: 1.1, 5: 1.2, 6: 1.5,
					7: 1.6, 8: 1.4, 9: 1.3, 10: 1.1, 11: 0.9, 12: 1.2,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
					7: true, 8: true, 9: true, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 7, Name: "Bastille Day", Impact: domain.ImpactPositive},
					{Month: 10, Name: "Nuit Blanche", Impact: domain.ImpactPositive},
					{Month: 12, Name: "Christmas Markets", Impact: domain.ImpactPositive},
				},
			},
		},
		{
			Key:     "tokyo",
			Name:    "Tokyo",
			Country: "Japan",
			Lat:     35.6762,
			Lon:     139.6503,
			Climate: domain.ClimateProfile{
				AvgTemp: 16, MinTemp: -1, MaxTemp: 31, SeasonalVariation: 20,
				AnnualRainfall: 1600,
				WetMonths:      []int{6, 7, 9, 10},
				DryMonths:      []int{12, 1, 2},
				Monsoon:        domain.MonsoonModerate,
				AvgHumidity:    63,
				SeasonalHumidity: [12]float64{
					51, 53, 56, 62, 67, 75, 78, 77, 74, 65, 59, 56,
				},
				SunshineHours: 5, UVIndex: 6,
				Typhoons: true, ExtremeHeat: true, Flooding: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{3, 4, 10, 11},
				ShoulderSeason: []int{5, 9, 12},
				OffSeason:      []int{1, 2, 6, 7, 8},
				CrowdLevels: map[int]int{
					1: 4, 2: 4, 3: 9, 4: 9, 5: 7, 6: 5,
					7: 6, 8: 6, 9: 6, 10: 8, 11: 8, 12: 5,
				},
				PriceIndex: map[int]float64{
					1: 0.8, 2: 0.8, 3: 1.6, 4: 1.7, 5: 1.2, 6: 0.9,
					7: 1.0, 8: 1.1, 9: 1.0, 10: 1.4, 11: 1.4, 12: 0.9,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
					7: true, 8: true, 9: true, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 4, Name: "Cherry Blossom Season", Impact: domain.ImpactPositive},
					{Month: 11, Name: "Autumn Foliage", Impact: domain.ImpactPositive},
					{Month: 9, Name: "Typhoon Season", Impact: domain.ImpactNegative},
				},
			},
		},
		{
			Key:     "dubai",
			Name:    "Dubai",
			Country: "United Arab Emirates",
			Lat:     25.2048,
			Lon:     55.2708,
			Climate: domain.ClimateProfile{
				AvgTemp: 27, MinTemp: 14, MaxTemp: 42, SeasonalVariation: 18,
				AnnualRainfall: 100,
				WetMonths:      []int{12, 1, 2, 3},
				DryMonths:      []int{5, 6, 7, 8, 9, 10},
				Monsoon:        domain.MonsoonNone,
				AvgHumidity:    61,
				SeasonalHumidity: [12]float64{
					65, 65, 64, 61, 58, 59, 60, 62, 64, 64, 65, 66,
				},
				SunshineHours: 9, UVIndex: 10,
				ExtremeHeat: true,
			},
			Tourism: domain.TourismProfile{
				PeakSeason:     []int{11, 12, 1, 2, 3},
				ShoulderSeason: []int{4, 10},
				OffSeason:      []int{5, 6, 7, 8, 9},
				CrowdLevels: map[int]int{
					1: 7, 2: 7, 3: 6, 4: 5, 5: 3, 6: 2,
					7: 2, 8: 2, 9: 3, 10: 5, 11: 6, 12: 7,
				},
				PriceIndex: map[int]float64{
					1: 1.3, 2: 1.2, 3: 1.1, 4: 1.0, 5: 0.7, 6: 0.6,
					7: 0.6, 8: 0.6, 9: 0.7, 10: 1.0, 11: 1.1, 12: 1.4,
				},
				Accessibility: map[int]bool{
					1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
					7: true, 8: true, 9: true, 10: true, 11: true, 12: true,
				},
				LocalEvents: []domain.LocalEvent{
					{Month: 1, Name: "Dubai Shopping Festival", Impact: domain.ImpactPositive},
					{Month: 12, Name: "New Year Celebrations", Impact: domain.ImpactPositive},
				},
			},
		},
	}
}
