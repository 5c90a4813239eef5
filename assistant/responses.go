package assistant

import "strings"

// rule maps trigger keywords (matched against the lowercased message)
// to a canned reply. Rules are checked in order; the first hit wins.
type rule struct {
	keywords []string
	reply    string
}

var welcome = map[string]string{
	LangEnglish: "Hello! I'm your welfare scheme assistant. How can I help you today?",
	LangHindi:   "नमस्ते! मैं आपका कल्याण योजना सहायक हूँ। आज मैं आपकी कैसे मदद कर सकता हूँ?",
}

var fallback = map[string]string{
	LangEnglish: "I'm here to help you with information about welfare schemes, application processes, and checking eligibility. Could you please provide more details about what you're looking for?",
	LangHindi:   "मैं आपकी कल्याण योजनाओं, आवेदन प्रक्रियाओं और पात्रता जांचने के बारे में जानकारी के साथ मदद करने के लिए यहां हूं। कृपया आप जो खोज रहे हैं उसके बारे में अधिक विवरण प्रदान करें।",
}

var rules = map[string][]rule{
	LangEnglish: {
		{
			keywords: []string{"eligible", "qualify"},
			reply:    "To check your eligibility for welfare schemes, I need to know a few details about you. If you've completed your profile, I can recommend schemes based on your age, income, location, and other factors. Would you like me to check what schemes you might be eligible for?",
		},
		{
			keywords: []string{"pm kisan", "pm-kisan"},
			reply:    "To apply for PM Kisan Yojana:\n\n1. Ensure you're a small or marginal farmer\n2. Prepare documents: Aadhaar card, land records, bank account details\n3. Register through our application portal\n4. Upload required documents\n5. Submit your application\n\nYou can track the status of your application through the My Applications section.",
		},
		{
			keywords: []string{"ayushman bharat", "pmjay"},
			reply:    "For Ayushman Bharat (PMJAY), the following documents are needed:\n\n1. Aadhaar Card\n2. Ration Card\n3. Income Certificate\n4. Recent passport-sized photograph\n5. Proof of residence\n\nIf eligible, you can apply directly through our platform by searching for the scheme and clicking the \"Apply Now\" button.",
		},
		{
			keywords: []string{"application status", "check status"},
			reply:    "You can check your application status by visiting the \"My Applications\" section in the main menu. There you'll find a list of all your applications with their current status (Pending, Approved, Rejected). You can click on any application to view more details.",
		},
		{
			keywords: []string{"document", "upload"},
			reply:    "Most schemes require basic documents such as:\n\n1. Aadhaar Card\n2. Income Certificate\n3. Caste Certificate (if applicable)\n4. Bank Account Details\n5. Passport-sized photograph\n\nSpecific schemes may require additional documents. When you apply for a scheme, our system will show you exactly what documents are needed.",
		},
		{
			keywords: []string{"grievance", "complaint"},
			reply:    "To file a grievance:\n\n1. Go to the \"Grievances\" section in the main menu\n2. Click on \"File New Grievance\"\n3. Select the issue type and provide details\n4. Attach any supporting documents if needed\n5. Submit your grievance\n\nYou can track the status of your grievance in the \"My Grievances\" section.",
		},
	},
	LangHindi: {
		{
			keywords: []string{"पात्र", "योग्य"},
			reply:    "कल्याण योजनाओं के लिए आपकी पात्रता जांचने के लिए, मुझे आपके बारे में कुछ विवरण जानने की आवश्यकता है। यदि आपने अपना प्रोफ़ाइल पूरा कर लिया है, तो मैं आपकी उम्र, आय, स्थान और अन्य कारकों के आधार पर योजनाओं की सिफारिश कर सकता हूं। क्या आप चाहते हैं कि मैं जांचूं कि आप किन योजनाओं के लिए पात्र हो सकते हैं?",
		},
		{
			keywords: []string{"पीएम किसान", "pm kisan"},
			reply:    "पीएम किसान योजना के लिए आवेदन करने के लिए:\n\n1. सुनिश्चित करें कि आप छोटे या सीमांत किसान हैं\n2. दस्तावेज तैयार करें: आधार कार्ड, भूमि रिकॉर्ड, बैंक खाता विवरण\n3. हमारे आवेदन पोर्टल के माध्यम से पंजीकरण करें\n4. आवश्यक दस्तावेज अपलोड करें\n5. अपना आवेदन जमा करें",
		},
		{
			keywords: []string{"आयुष्मान भारत", "pmjay"},
			reply:    "आयुष्मान भारत (PMJAY) के लिए, निम्नलिखित दस्तावेज़ आवश्यक हैं:\n\n1. आधार कार्ड\n2. राशन कार्ड\n3. आय प्रमाण पत्र\n4. हाल का पासपोर्ट आकार का फोटो\n5. निवास प्रमाण",
		},
		{
			keywords: []string{"आवेदन स्थिति", "स्टेटस"},
			reply:    "आप मुख्य मेनू में \"मेरे आवेदन\" अनुभाग पर जाकर अपने आवेदन की स्थिति की जांच कर सकते हैं। वहां आपको अपने सभी आवेदनों की उनकी वर्तमान स्थिति (लंबित, स्वीकृत, अस्वीकृत) के साथ एक सूची मिलेगी।",
		},
		{
			keywords: []string{"दस्तावेज", "अपलोड"},
			reply:    "अधिकांश योजनाओं के लिए बुनियादी दस्तावेजों की आवश्यकता होती है जैसे:\n\n1. आधार कार्ड\n2. आय प्रमाण पत्र\n3. जाति प्रमाण पत्र (यदि लागू हो)\n4. बैंक खाता विवरण\n5. पासपोर्ट आकार का फोटो",
		},
		{
			keywords: []string{"शिकायत", "समस्या"},
			reply:    "शिकायत दर्ज करने के लिए:\n\n1. मुख्य मेनू में \"शिकायतें\" अनुभाग पर जाएं\n2. \"नई शिकायत दर्ज करें\" पर क्लिक करें\n3. समस्या प्रकार का चयन करें और विवरण प्रदान करें\n4. यदि आवश्यक हो तो कोई सहायक दस्तावेज़ संलग्न करें\n5. अपनी शिकायत जमा करें",
		},
	},
}

// respond walks the rule table for the language and returns the first
// matching reply, falling back to the generic prompt.
func respond(lang, lowered string) string {
	for _, r := range rules[lang] {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply
			}
		}
	}
	return fallback[lang]
}
