package knowledge

import "farm-advisor/internal/models"

// DefaultKnowledgeBase builds the built-in agricultural dataset used when no
// knowledge file exists on disk yet.
func DefaultKnowledgeBase() *models.KnowledgeBase {
	base := &models.KnowledgeBase{
		Metadata: models.Metadata{
			Version:     "1.0",
			LastUpdated: "2025-01-15",
			Languages:   []string{"en", "hi"},
		},
		Categories: models.CategoryList{
			{
				ID: "crop_planning",
				Name: models.LocalizedText{
					"en": "Crop Planning and Timing",
					"hi": "फसल योजना और समय",
				},
				Entries: []models.Entry{
					{
						ID: "rice_planting_time",
						Questions: models.PhraseSet{
							"en": {"when to plant rice", "rice planting season", "best time for rice cultivation"},
							"hi": {"चावल कब लगाएं", "चावल बोने का समय", "धान की खेती का समय"},
						},
						Answer: models.LocalizedText{
							"en": "Rice should be planted during monsoon season, typically June to July in most regions of India. For Kharif rice, plant after the first good rain when soil moisture is adequate. Transplant 20-25 day old seedlings in well-prepared, puddled fields.",
							"hi": "चावल मानसून के दौरान लगाना चाहिए, भारत के अधिकांश क्षेत्रों में आमतौर पर जून से जुलाई में। खरीफ चावल के लिए, जब मिट्टी में पर्याप्त नमी हो तो पहली अच्छी बारिश के बाद बोएं। 20-25 दिन पुराने पौधों को तैयार खेत में रोपें।",
						},
						Keywords: []string{"rice", "paddy", "monsoon", "kharif", "चावल", "धान", "खरीफ", "मानसून"},
					},
					{
						ID: "wheat_cultivation",
						Questions: models.PhraseSet{
							"en": {"when to sow wheat", "wheat planting time", "rabi wheat season"},
							"hi": {"गेहूं कब बोएं", "गेहूं बोने का समय", "रबी गेहूं का मौसम"},
						},
						Answer: models.LocalizedText{
							"en": "Wheat is a Rabi crop, best sown from November to December. The ideal temperature for sowing is 18-25°C. Ensure adequate soil moisture and sow seeds at 2-3 cm depth with proper row spacing of 20-25 cm.",
							"hi": "गेहूं एक रबी की फसल है, जो नवंबर से दिसंबर में बोई जाती है। बुआई के लिए आदर्श तापमान 18-25°C है। पर्याप्त मिट्टी की नमी सुनिश्चित करें और बीजों को 2-3 सेमी गहराई में 20-25 सेमी की उचित पंक्ति दूरी के साथ बोएं।",
						},
						Keywords: []string{"wheat", "rabi", "november", "december", "गेहूं", "रबी", "नवंबर", "दिसंबर"},
					},
				},
			},
			{
				ID: "soil_management",
				Name: models.LocalizedText{
					"en": "Soil Management",
					"hi": "मिट्टी प्रबंधन",
				},
				Entries: []models.Entry{
					{
						ID: "soil_testing",
						Questions: models.PhraseSet{
							"en": {"how to test soil", "soil testing methods", "check soil quality"},
							"hi": {"मिट्टी की जांच कैसे करें", "भूमि परीक्षण", "मिट्टी की गुणवत्ता"},
						},
						Answer: models.LocalizedText{
							"en": "Test your soil every 2-3 years. Collect samples from 6-8 inches depth from multiple spots. Test for pH, nitrogen, phosphorus, potassium, and organic matter. Contact your local agriculture extension office or use soil testing kits.",
							"hi": "हर 2-3 साल में अपनी मिट्टी की जांच करवाएं। कई स्थानों से 6-8 इंच की गहराई से नमूने लें। pH, नाइट्रोजन, फास्फोरस, पोटेशियम और जैविक पदार्थ की जांच कराएं। स्थानीय कृषि विस्तार कार्यालय से संपर्क करें।",
						},
						Keywords: []string{"soil test", "pH", "nitrogen", "phosphorus", "potassium", "मिट्टी जांच", "नाइट्रोजन", "फास्फोरस", "पोटेशियम"},
					},
				},
			},
			{
				ID: "irrigation",
				Name: models.LocalizedText{
					"en": "Irrigation and Water Management",
					"hi": "सिंचाई और जल प्रबंधन",
				},
				Entries: []models.Entry{
					{
						ID: "irrigation_timing",
						Questions: models.PhraseSet{
							"en": {"when to water crops", "best time for irrigation", "how often to irrigate"},
							"hi": {"फसलों को पानी कब दें", "सिंचाई का सही समय", "कितनी बार सिंचाई करें"},
						},
						Answer: models.LocalizedText{
							"en": "Best time for irrigation is early morning (5-7 AM) or evening (6-8 PM) to minimize evaporation. Check soil moisture by inserting finger 2-3 inches deep. Water when top soil feels dry but subsoil is still moist.",
							"hi": "सिंचाई का सबसे अच्छा समय सुबह (5-7 बजे) या शाम (6-8 बजे) है ताकि वाष्पीकरण कम हो। 2-3 इंच गहराई तक उंगली डालकर मिट्टी की नमी जांचें। जब ऊपरी मिट्टी सूखी लगे लेकिन निचली मिट्टी नम हो तब पानी दें।",
						},
						Keywords: []string{"water", "irrigation", "moisture", "evaporation", "पानी", "सिंचाई", "नमी"},
					},
				},
			},
			{
				ID: "pest_disease",
				Name: models.LocalizedText{
					"en": "Pest and Disease Control",
					"hi": "कीट और रोग नियंत्रण",
				},
				Entries: []models.Entry{
					{
						ID: "pest_control",
						Questions: models.PhraseSet{
							"en": {"how to control pests", "pest management", "natural pest remedies"},
							"hi": {"कीटों को कैसे नियंत्रित करें", "कीट प्रबंधन", "प्राकृतिक कीट उपचार"},
						},
						Answer: models.LocalizedText{
							"en": "Use Integrated Pest Management (IPM): Monitor regularly, encourage beneficial insects, use neem oil, practice crop rotation, maintain field hygiene. Use chemical pesticides only as last resort.",
							"hi": "एकीकृत कीट प्रबंधन (IPM) का उपयोग करें: नियमित निगरानी करें, लाभकारी कीटों को बढ़ावा दें, नीम का तेल उपयोग करें, फसल चक्र अपनाएं, खेत की स्वच्छता बनाए रखें। रासायनिक कीटनाशकों का उपयोग अंतिम उपाय के रूप में ही करें।",
						},
						Keywords: []string{"pest", "insect", "ipm", "neem", "pesticide", "कीट", "नीम", "कीटनाशक"},
					},
				},
			},
			{
				ID: "fertilizers",
				Name: models.LocalizedText{
					"en": "Fertilizers and Nutrients",
					"hi": "उर्वरक और पोषक तत्व",
				},
				Entries: []models.Entry{
					{
						ID: "organic_fertilizers",
						Questions: models.PhraseSet{
							"en": {"which organic fertilizer to use", "organic manure options", "how much compost to apply"},
							"hi": {"कौन सा जैविक उर्वरक उपयोग करें", "जैविक खाद के विकल्प", "कितनी खाद डालें"},
						},
						Answer: models.LocalizedText{
							"en": "Organic fertilizers include compost, farmyard manure, vermicompost, bone meal, and green manures. They improve soil structure, retain moisture, and provide slow-release nutrients. Apply 5-10 tons per hectare based on soil test results.",
							"hi": "जैविक उर्वरकों में खाद, गोबर की खाद, वर्मी कंपोस्ट, हड्डी का चूर्ण, और हरी खाद शामिल हैं। ये मिट्टी की संरचना सुधारते हैं, नमी बनाए रखते हैं, और धीमी गति से पोषक तत्व देते हैं। मिट्टी परीक्षण के आधार पर 5-10 टन प्रति हेक्टेयर डालें।",
						},
						Keywords: []string{"fertilizer", "compost", "manure", "vermicompost", "उर्वरक", "खाद", "कंपोस्ट"},
					},
				},
			},
		},
		CommonQuestions: map[string]models.PhraseSet{
			models.IntentGreetings: {
				"en": {"hello", "hi", "good morning", "good evening", "namaste"},
				"hi": {"नमस्ते", "नमस्कार", "हैलो", "सुप्रभात", "शुभ संध्या"},
			},
			models.IntentHelp: {
				"en": {"help", "what can you do", "how to use", "assistance"},
				"hi": {"सहायता", "मदद", "आप क्या कर सकते हैं", "कैसे उपयोग करें"},
			},
		},
		Responses: map[string]models.LocalizedText{
			models.IntentGreetings: {
				"en": "Hello! I'm your agricultural advisor. You can ask me about crop timing, soil management, irrigation, pest control, fertilizers, and weather-related farming questions. How can I help you today?",
				"hi": "नमस्ते! मैं आपका कृषि सलाहकार हूं। आप मुझसे फसल का समय, मिट्टी प्रबंधन, सिंचाई, कीट नियंत्रण, उर्वरक, और मौसम संबंधी खेती के प्रश्न पूछ सकते हैं। आज मैं आपकी कैसे सहायता कर सकता हूं?",
			},
			models.IntentHelp: {
				"en": "I can help you with:\n• Crop planting times and seasons\n• Soil management and testing\n• Irrigation and water management\n• Pest and disease control\n• Fertilizer recommendations\n• Weather adaptation strategies\n\nJust ask your question in English or Hindi!",
				"hi": "मैं इन विषयों में आपकी सहायता कर सकता हूं:\n• फसल लगाने का समय और मौसम\n• मिट्टी प्रबंधन और परीक्षण\n• सिंचाई और जल प्रबंधन\n• कीट और रोग नियंत्रण\n• उर्वरक सिफारिशें\n• मौसम अनुकूलन रणनीतियां\n\nअपना प्रश्न अंग्रेजी या हिंदी में पूछें!",
			},
			models.IntentNotFound: {
				"en": "I'm sorry, I don't have specific information about that topic in my knowledge base. Could you please rephrase your question or ask about crop planning, soil management, irrigation, pest control, fertilizers, or weather-related farming topics?",
				"hi": "क्षमा करें, मेरे ज्ञान आधार में उस विषय के बारे में विशिष्ट जानकारी नहीं है। कृपया अपना प्रश्न दूसरे तरीके से पूछें या फसल योजना, मिट्टी प्रबंधन, सिंचाई, कीट नियंत्रण, उर्वरक, या मौसम संबंधी खेती के विषयों के बारे में पूछें।",
			},
		},
	}

	total := 0
	for _, cat := range base.Categories {
		total += len(cat.Entries)
	}
	base.Metadata.TotalEntries = total

	return base
}
