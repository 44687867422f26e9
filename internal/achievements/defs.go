package achievements

// Builtin returns the compiled-in achievement catalog of the companion app.
// Ids are stable across releases; do not rename or reuse them.
func Builtin() []Definition {
	return []Definition{
		// Explorer - moving around the app
		{ID: "first-steps", Category: CategoryExplorer, MaxProgress: 1, XP: 10,
			TitleEn: "First Steps", TitleAr: "الخطوات الأولى",
			DescriptionEn: "Open your dashboard for the first time.", DescriptionAr: "افتح لوحتك الرئيسية لأول مرة."},
		{ID: "dashboard-regular", Category: CategoryExplorer, MaxProgress: 10, XP: 40,
			TitleEn: "Dashboard Regular", TitleAr: "زائر دائم",
			DescriptionEn: "Visit your dashboard 10 times.", DescriptionAr: "قم بزيارة لوحتك الرئيسية 10 مرات."},
		{ID: "dashboard-devotee", Category: CategoryExplorer, MaxProgress: 50, XP: 120,
			TitleEn: "Dashboard Devotee", TitleAr: "مواظب على اللوحة",
			DescriptionEn: "Visit your dashboard 50 times.", DescriptionAr: "قم بزيارة لوحتك الرئيسية 50 مرة."},
		{ID: "explorer", Category: CategoryExplorer, MaxProgress: 5, XP: 50,
			TitleEn: "Explorer", TitleAr: "مستكشف",
			DescriptionEn: "Open 5 different sections of the app.", DescriptionAr: "افتح 5 أقسام مختلفة من التطبيق."},
		{ID: "profile-polished", Category: CategoryExplorer, MaxProgress: 1, XP: 30,
			TitleEn: "Polished Profile", TitleAr: "ملف مكتمل",
			DescriptionEn: "Complete your profile details.", DescriptionAr: "أكمل بيانات ملفك الشخصي."},
		{ID: "avatar-artist", Category: CategoryExplorer, MaxProgress: 1, XP: 20,
			TitleEn: "New Look", TitleAr: "إطلالة جديدة",
			DescriptionEn: "Upload a profile picture.", DescriptionAr: "ارفع صورة لملفك الشخصي."},
		{ID: "searcher", Category: CategoryExplorer, MaxProgress: 5, XP: 25,
			TitleEn: "Searcher", TitleAr: "باحث",
			DescriptionEn: "Use the search 5 times.", DescriptionAr: "استخدم البحث 5 مرات."},
		{ID: "search-hound", Category: CategoryExplorer, MaxProgress: 25, XP: 75,
			TitleEn: "Search Hound", TitleAr: "باحث محترف",
			DescriptionEn: "Use the search 25 times.", DescriptionAr: "استخدم البحث 25 مرة."},
		{ID: "night-owl", Category: CategoryExplorer, MaxProgress: 1, XP: 30,
			TitleEn: "Night Owl", TitleAr: "بومة الليل",
			DescriptionEn: "Study after midnight.", DescriptionAr: "ادرس بعد منتصف الليل."},
		{ID: "early-bird", Category: CategoryExplorer, MaxProgress: 1, XP: 30,
			TitleEn: "Early Bird", TitleAr: "الطير المبكر",
			DescriptionEn: "Study before 7 in the morning.", DescriptionAr: "ادرس قبل السابعة صباحًا."},

		// Community - chat and the social graph
		{ID: "ice-breaker", Category: CategoryCommunity, MaxProgress: 1, XP: 15,
			TitleEn: "Ice Breaker", TitleAr: "كاسر الجليد",
			DescriptionEn: "Send your first message in the community chat.", DescriptionAr: "أرسل رسالتك الأولى في دردشة المجتمع."},
		{ID: "conversationalist", Category: CategoryCommunity, MaxProgress: 25, XP: 60,
			TitleEn: "Conversationalist", TitleAr: "محاور",
			DescriptionEn: "Send 25 messages in the community chat.", DescriptionAr: "أرسل 25 رسالة في دردشة المجتمع."},
		{ID: "chatterbox", Category: CategoryCommunity, MaxProgress: 100, XP: 150,
			TitleEn: "Chatterbox", TitleAr: "ثرثار",
			DescriptionEn: "Send 100 messages in the community chat.", DescriptionAr: "أرسل 100 رسالة في دردشة المجتمع."},
		{ID: "first-follow", Category: CategoryCommunity, MaxProgress: 1, XP: 15,
			TitleEn: "Making Friends", TitleAr: "تكوين صداقات",
			DescriptionEn: "Follow another student.", DescriptionAr: "تابع طالبًا آخر."},
		{ID: "networker", Category: CategoryCommunity, MaxProgress: 10, XP: 50,
			TitleEn: "Networker", TitleAr: "شبكي",
			DescriptionEn: "Follow 10 students.", DescriptionAr: "تابع 10 طلاب."},
		{ID: "community-pillar", Category: CategoryCommunity, MaxProgress: 25, XP: 120,
			TitleEn: "Community Pillar", TitleAr: "ركيزة المجتمع",
			DescriptionEn: "Follow 25 students.", DescriptionAr: "تابع 25 طالبًا."},
		{ID: "first-fan", Category: CategoryCommunity, MaxProgress: 1, XP: 20,
			TitleEn: "First Fan", TitleAr: "أول متابع",
			DescriptionEn: "Gain your first follower.", DescriptionAr: "احصل على متابعك الأول."},
		{ID: "rising-star", Category: CategoryCommunity, MaxProgress: 10, XP: 80,
			TitleEn: "Rising Star", TitleAr: "نجم صاعد",
			DescriptionEn: "Gain 10 followers.", DescriptionAr: "احصل على 10 متابعين."},
		{ID: "btec-celebrity", Category: CategoryCommunity, MaxProgress: 50, XP: 250,
			TitleEn: "BTEC Celebrity", TitleAr: "مشهور البرنامج",
			DescriptionEn: "Gain 50 followers.", DescriptionAr: "احصل على 50 متابعًا."},

		// Scholar - the content pages
		{ID: "guide-glancer", Category: CategoryScholar, MaxProgress: 1, XP: 10,
			TitleEn: "Guide Glancer", TitleAr: "مطلع على الأدلة",
			DescriptionEn: "Open a study guide.", DescriptionAr: "افتح دليلًا دراسيًا."},
		{ID: "guide-reader", Category: CategoryScholar, MaxProgress: 10, XP: 50,
			TitleEn: "Guide Reader", TitleAr: "قارئ الأدلة",
			DescriptionEn: "Open 10 study guides.", DescriptionAr: "افتح 10 أدلة دراسية."},
		{ID: "guide-scholar", Category: CategoryScholar, MaxProgress: 25, XP: 120,
			TitleEn: "Guide Scholar", TitleAr: "عالم الأدلة",
			DescriptionEn: "Open 25 study guides.", DescriptionAr: "افتح 25 دليلًا دراسيًا."},
		{ID: "glossary-curious", Category: CategoryScholar, MaxProgress: 1, XP: 10,
			TitleEn: "Curious Mind", TitleAr: "عقل فضولي",
			DescriptionEn: "Look up a glossary term.", DescriptionAr: "ابحث عن مصطلح في المسرد."},
		{ID: "glossary-digger", Category: CategoryScholar, MaxProgress: 15, XP: 60,
			TitleEn: "Glossary Digger", TitleAr: "منقّب المسرد",
			DescriptionEn: "Look up 15 glossary terms.", DescriptionAr: "ابحث عن 15 مصطلحًا في المسرد."},
		{ID: "glossary-master", Category: CategoryScholar, MaxProgress: 40, XP: 150,
			TitleEn: "Glossary Master", TitleAr: "سيد المسرد",
			DescriptionEn: "Look up 40 glossary terms.", DescriptionAr: "ابحث عن 40 مصطلحًا في المسرد."},
		{ID: "verb-spotter", Category: CategoryScholar, MaxProgress: 1, XP: 10,
			TitleEn: "Verb Spotter", TitleAr: "راصد الأفعال",
			DescriptionEn: "Review a command verb.", DescriptionAr: "راجع فعلًا إجرائيًا."},
		{ID: "verb-collector", Category: CategoryScholar, MaxProgress: 20, XP: 70,
			TitleEn: "Verb Collector", TitleAr: "جامع الأفعال",
			DescriptionEn: "Review 20 command verbs.", DescriptionAr: "راجع 20 فعلًا إجرائيًا."},
		{ID: "verb-virtuoso", Category: CategoryScholar, MaxProgress: 50, XP: 180,
			TitleEn: "Verb Virtuoso", TitleAr: "خبير الأفعال",
			DescriptionEn: "Review 50 command verbs.", DescriptionAr: "راجع 50 فعلًا إجرائيًا."},
		{ID: "unit-explorer", Category: CategoryScholar, MaxProgress: 1, XP: 20,
			TitleEn: "Unit Explorer", TitleAr: "مستكشف الوحدات",
			DescriptionEn: "Open your first unit page.", DescriptionAr: "افتح صفحة وحدتك الأولى."},
		{ID: "unit-completer", Category: CategoryScholar, MaxProgress: 5, XP: 100,
			TitleEn: "Unit Completer", TitleAr: "منهي الوحدات",
			DescriptionEn: "Work through 5 unit pages.", DescriptionAr: "أنجز 5 صفحات وحدات."},
		{ID: "distinction-mindset", Category: CategoryScholar, MaxProgress: 10, XP: 200,
			TitleEn: "Distinction Mindset", TitleAr: "عقلية التميز",
			DescriptionEn: "Read 10 distinction-level writing tips.", DescriptionAr: "اقرأ 10 نصائح لمستوى التميز."},

		// Assistant - the AI study buddy
		{ID: "curious-student", Category: CategoryAssistant, MaxProgress: 1, XP: 15,
			TitleEn: "Curious Student", TitleAr: "طالب فضولي",
			DescriptionEn: "Ask the study assistant a question.", DescriptionAr: "اطرح سؤالًا على المساعد الدراسي."},
		{ID: "deep-thinker", Category: CategoryAssistant, MaxProgress: 20, XP: 80,
			TitleEn: "Deep Thinker", TitleAr: "مفكر عميق",
			DescriptionEn: "Ask the study assistant 20 questions.", DescriptionAr: "اطرح 20 سؤالًا على المساعد الدراسي."},
		{ID: "socratic", Category: CategoryAssistant, MaxProgress: 100, XP: 300,
			TitleEn: "Socratic", TitleAr: "سقراطي",
			DescriptionEn: "Ask the study assistant 100 questions.", DescriptionAr: "اطرح 100 سؤال على المساعد الدراسي."},

		// Studio - the image tool
		{ID: "imagineer", Category: CategoryStudio, MaxProgress: 1, XP: 15,
			TitleEn: "Imagineer", TitleAr: "مبدع الصور",
			DescriptionEn: "Generate your first image.", DescriptionAr: "أنشئ صورتك الأولى."},
		{ID: "illustrator", Category: CategoryStudio, MaxProgress: 15, XP: 70,
			TitleEn: "Illustrator", TitleAr: "رسام",
			DescriptionEn: "Generate 15 images.", DescriptionAr: "أنشئ 15 صورة."},
		{ID: "gallery-owner", Category: CategoryStudio, MaxProgress: 50, XP: 200,
			TitleEn: "Gallery Owner", TitleAr: "صاحب معرض",
			DescriptionEn: "Generate 50 images.", DescriptionAr: "أنشئ 50 صورة."},

		// Dedication - habits and planning
		{ID: "daily-visitor", Category: CategoryDedication, MaxProgress: 7, XP: 100,
			TitleEn: "Daily Visitor", TitleAr: "زائر يومي",
			DescriptionEn: "Visit the app 7 days.", DescriptionAr: "زر التطبيق 7 أيام."},
		{ID: "fortnight-focus", Category: CategoryDedication, MaxProgress: 14, XP: 180,
			TitleEn: "Fortnight Focus", TitleAr: "تركيز أسبوعين",
			DescriptionEn: "Visit the app 14 days.", DescriptionAr: "زر التطبيق 14 يومًا."},
		{ID: "marathon-learner", Category: CategoryDedication, MaxProgress: 30, XP: 500,
			TitleEn: "Marathon Learner", TitleAr: "متعلم ماراثوني",
			DescriptionEn: "Visit the app 30 days.", DescriptionAr: "زر التطبيق 30 يومًا."},
		{ID: "planner", Category: CategoryDedication, MaxProgress: 1, XP: 25,
			TitleEn: "Planner", TitleAr: "مخطِّط",
			DescriptionEn: "Generate a smart study schedule.", DescriptionAr: "أنشئ جدولًا دراسيًا ذكيًا."},
		{ID: "master-planner", Category: CategoryDedication, MaxProgress: 10, XP: 120,
			TitleEn: "Master Planner", TitleAr: "مخطِّط محترف",
			DescriptionEn: "Generate 10 smart study schedules.", DescriptionAr: "أنشئ 10 جداول دراسية ذكية."},
		{ID: "session-warrior", Category: CategoryDedication, MaxProgress: 5, XP: 90,
			TitleEn: "Session Warrior", TitleAr: "محارب الجلسات",
			DescriptionEn: "Study for 5 long sessions.", DescriptionAr: "ادرس 5 جلسات طويلة."},
		{ID: "streak-keeper", Category: CategoryDedication, MaxProgress: 3, XP: 60,
			TitleEn: "Streak Keeper", TitleAr: "حافظ السلسلة",
			DescriptionEn: "Visit the app 3 days in a row.", DescriptionAr: "زر التطبيق 3 أيام متتالية."},
	}
}
