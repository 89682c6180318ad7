package catalog

import "signaldraft/internal/domain"

func trend(id, title, horizon, category string) domain.Card {
	return domain.Card{ID: id, Type: domain.CardTrend, Title: title,
		Trend: &domain.TrendAttrs{TimeHorizon: horizon, Category: category}}
}

func problem(id, title, persona string, pain int) domain.Card {
	return domain.Card{ID: id, Type: domain.CardProblem, Title: title,
		Problem: &domain.ProblemAttrs{Persona: persona, PainLevelHint: pain}}
}

func tech(id, title, category string) domain.Card {
	return domain.Card{ID: id, Type: domain.CardTech, Title: title,
		Tech: &domain.TechAttrs{TechCategory: category}}
}

func asset(id, title string) domain.Card {
	return domain.Card{ID: id, Type: domain.CardAsset, Title: title, Asset: &domain.AssetAttrs{}}
}

func market(id, title string) domain.Card {
	return domain.Card{ID: id, Type: domain.CardMarket, Title: title}
}

// BundledDeck returns the compiled-in fallback catalog. Sized so the default
// settings can deal full hands to a full table.
func BundledDeck() *domain.CardDeck {
	return &domain.CardDeck{
		Trends: []domain.Card{
			trend("t-01", "AI agents doing real work", "1-3 yrs", "ai"),
			trend("t-02", "Everything gets a copilot", "1-3 yrs", "ai"),
			trend("t-03", "Synthetic media goes mainstream", "1-3 yrs", "media"),
			trend("t-04", "Creator economy professionalizes", "1-3 yrs", "media"),
			trend("t-05", "Remote-first becomes the default", "1-3 yrs", "work"),
			trend("t-06", "Four-day work weeks spread", "3-5 yrs", "work"),
			trend("t-07", "Aging population boom", "5+ yrs", "demographics"),
			trend("t-08", "Solo living on the rise", "3-5 yrs", "demographics"),
			trend("t-09", "Climate adaptation spending surges", "3-5 yrs", "climate"),
			trend("t-10", "Grid-scale batteries get cheap", "3-5 yrs", "climate"),
			trend("t-11", "Personal carbon accounting", "5+ yrs", "climate"),
			trend("t-12", "Longevity medicine goes consumer", "5+ yrs", "health"),
			trend("t-13", "Continuous health monitoring", "1-3 yrs", "health"),
			trend("t-14", "Mental health destigmatized", "1-3 yrs", "health"),
			trend("t-15", "Food as medicine", "3-5 yrs", "health"),
			trend("t-16", "Micro-mobility everywhere", "1-3 yrs", "mobility"),
			trend("t-17", "Autonomous delivery nears viability", "3-5 yrs", "mobility"),
			trend("t-18", "Space economy opens up", "5+ yrs", "frontier"),
			trend("t-19", "Ocean farming scales", "5+ yrs", "frontier"),
			trend("t-20", "Digital identity wallets", "3-5 yrs", "infrastructure"),
			trend("t-21", "Passwordless authentication wins", "1-3 yrs", "infrastructure"),
			trend("t-22", "Local-first software revival", "3-5 yrs", "infrastructure"),
			trend("t-23", "Vertical social networks", "1-3 yrs", "social"),
			trend("t-24", "Community-owned platforms", "3-5 yrs", "social"),
			trend("t-25", "Skills beat degrees", "3-5 yrs", "education"),
			trend("t-26", "Lifelong reskilling economy", "3-5 yrs", "education"),
			trend("t-27", "Hyper-personalized retail", "1-3 yrs", "commerce"),
			trend("t-28", "Resale and circular commerce", "1-3 yrs", "commerce"),
			trend("t-29", "Embedded finance everywhere", "1-3 yrs", "fintech"),
			trend("t-30", "Real-time cross-border payments", "3-5 yrs", "fintech"),
		},
		Problems: []domain.Card{
			problem("p-01", "Nobody reads the documentation", "software team", 3),
			problem("p-02", "Meetings eat the whole day", "middle manager", 4),
			problem("p-03", "Onboarding new hires takes months", "HR lead", 4),
			problem("p-04", "Freelancers chase unpaid invoices", "freelancer", 5),
			problem("p-05", "Subscription sprawl drains budgets", "finance team", 3),
			problem("p-06", "Expense reports are soul-crushing", "traveling employee", 3),
			problem("p-07", "Finding a therapist takes weeks", "burned-out professional", 5),
			problem("p-08", "Elderly parents living alone worry families", "adult child", 5),
			problem("p-09", "Medication schedules get missed", "chronic patient", 5),
			problem("p-10", "Doctors repeat the same intake questions", "patient", 3),
			problem("p-11", "School pickup logistics are chaos", "working parent", 4),
			problem("p-12", "Kids' screen time is unmanageable", "parent", 4),
			problem("p-13", "Renters lose deposits unfairly", "urban renter", 4),
			problem("p-14", "Moving apartments is a nightmare", "urban renter", 4),
			problem("p-15", "Neighbors never meet each other", "city dweller", 2),
			problem("p-16", "Food waste at home adds up", "household", 3),
			problem("p-17", "Meal planning is a daily chore", "busy family", 3),
			problem("p-18", "Groceries cost more every month", "household", 4),
			problem("p-19", "Gym memberships go unused", "aspirational exerciser", 2),
			problem("p-20", "Hobby gear sits idle in garages", "weekend hobbyist", 2),
			problem("p-21", "Travel plans fall apart on delays", "frequent flyer", 4),
			problem("p-22", "Small shops can't compete online", "shop owner", 5),
			problem("p-23", "Restaurant no-shows burn revenue", "restaurant owner", 4),
			problem("p-24", "Farmers guess at crop prices", "smallholder farmer", 5),
			problem("p-25", "Construction projects always overrun", "site manager", 5),
			problem("p-26", "Warehouse shifts are understaffed", "operations manager", 4),
			problem("p-27", "Customer support drowns in tickets", "support lead", 4),
			problem("p-28", "Sales teams hate updating the CRM", "sales rep", 3),
			problem("p-29", "Compliance paperwork never ends", "compliance officer", 4),
			problem("p-30", "Nonprofits can't prove their impact", "nonprofit director", 4),
		},
		Tech: []domain.Card{
			tech("x-01", "Large language models", "ai"),
			tech("x-02", "Computer vision", "ai"),
			tech("x-03", "Speech recognition", "ai"),
			tech("x-04", "Recommendation engines", "ai"),
			tech("x-05", "Edge AI inference", "ai"),
			tech("x-06", "Wearable sensors", "hardware"),
			tech("x-07", "Smart home devices", "hardware"),
			tech("x-08", "Drones", "hardware"),
			tech("x-09", "3D printing", "hardware"),
			tech("x-10", "Robotic process automation", "automation"),
			tech("x-11", "No-code app builders", "platform"),
			tech("x-12", "Open banking APIs", "fintech"),
			tech("x-13", "Instant payment rails", "fintech"),
			tech("x-14", "Smart contracts", "web3"),
			tech("x-15", "Digital twins", "simulation"),
			tech("x-16", "AR overlays", "xr"),
			tech("x-17", "VR training environments", "xr"),
			tech("x-18", "Satellite imagery", "geospatial"),
			tech("x-19", "Precise indoor positioning", "geospatial"),
			tech("x-20", "Mesh networking", "connectivity"),
			tech("x-21", "5G low-latency links", "connectivity"),
			tech("x-22", "Biometric authentication", "security"),
			tech("x-23", "Homomorphic encryption", "security"),
			tech("x-24", "Vector search", "data"),
			tech("x-25", "Streaming data pipelines", "data"),
		},
		Assets: []domain.Card{
			asset("a-01", "An audience of 100k newsletter readers"),
			asset("a-02", "A warehouse lease in every major city"),
			asset("a-03", "Exclusive dataset of consumer behavior"),
			asset("a-04", "A beloved consumer brand"),
			asset("a-05", "Deep enterprise sales relationships"),
			asset("a-06", "A fleet of delivery vans"),
			asset("a-07", "Patents on a novel sensor"),
			asset("a-08", "A community of 10k superfans"),
			asset("a-09", "Retail shelf space nationwide"),
			asset("a-10", "A team of world-class ML engineers"),
		},
		Markets: []domain.Card{
			market("m-01", "Small and medium businesses"),
			market("m-02", "Enterprise IT departments"),
			market("m-03", "Urban millennials"),
			market("m-04", "Retirees and caregivers"),
			market("m-05", "College students"),
			market("m-06", "Healthcare providers"),
			market("m-07", "Independent creators"),
			market("m-08", "Logistics operators"),
		},
	}
}
