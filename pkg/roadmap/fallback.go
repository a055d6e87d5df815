package roadmap

import (
	"fmt"
	"strings"
)

// fallbackRoadmap builds a roadmap draft without the model: a curated
// template when the (industry, target role) pair is known, otherwise a
// generic three-step plan. It never fails.
func fallbackRoadmap(a AssessmentInput) modelRoadmap {
	ms, ok := curated[catalogKey(a.Industry, a.TargetRole)]
	if !ok {
		ms = genericMilestones(a.TargetRole, a.Industry)
	}
	total := 0
	for _, m := range ms {
		total += m.EstimatedHours
	}
	from := a.CurrentRole
	if from == "" {
		from = "Getting Started"
	}
	return modelRoadmap{
		Title:               fmt.Sprintf("Career Path: %s to %s", from, a.TargetRole),
		Description:         fmt.Sprintf("A structured %d-month plan to become a %s in the %s industry, assembled from curated learning templates.", a.TimelineMonths, a.TargetRole, a.Industry),
		MarketContext:       "Built from curated templates; regenerate later for live market insights.",
		CurrentMarketSalary: fmt.Sprintf("Varies by region and experience for %s roles.", a.TargetRole),
		SuccessMetrics:      "Finish each milestone in order, collect the listed certificates and projects, and track progress on your dashboard.",
		Milestones:          ms,
		TotalEstimatedHours: &total,
	}
}

func catalogKey(industry, role string) string {
	return strings.ToLower(strings.TrimSpace(industry)) + "|" + strings.ToLower(strings.TrimSpace(role))
}

// genericMilestones covers unknown (industry, role) pairs. Every title names
// the target role so the plan still reads as personal.
func genericMilestones(role, industry string) []modelMilestone {
	return []modelMilestone{
		{
			Title:          fmt.Sprintf("Build Core Foundations for a %s Role", role),
			Description:    fmt.Sprintf("Map the skills expected of a %s in the %s industry, then close the most important gaps with structured courses and reading.", role, industry),
			EstimatedHours: 40,
			Resources: []Resource{
				{Title: fmt.Sprintf("Introductory %s courses", role), URL: "https://www.coursera.org", Type: "course", Provider: "Coursera"},
				{Title: fmt.Sprintf("Recent books and guides on %s fundamentals", role), Type: "book"},
				{Title: "Industry newsletters and community forums", Type: "project"},
			},
		},
		{
			Title:          fmt.Sprintf("Gain Practical %s Experience", role),
			Description:    "Apply the fundamentals on real work: a portfolio project, freelance or volunteer engagements, and contributions visible to employers.",
			EstimatedHours: 60,
			Resources: []Resource{
				{Title: "Scoped portfolio project in your target domain", Type: "project"},
				{Title: "Volunteer or freelance engagement", URL: "https://www.catchafire.org", Type: "project", Provider: "Catchafire"},
				{Title: "Public portfolio on GitHub or a personal site", URL: "https://pages.github.com", Type: "project", Provider: "GitHub"},
			},
		},
		{
			Title:          fmt.Sprintf("Launch Your %s Job Search", role),
			Description:    "Package the new experience: tailor your resume and online profiles, rehearse interviews, and run a focused application pipeline.",
			EstimatedHours: 30,
			Resources: []Resource{
				{Title: "Resume and LinkedIn optimization guides", URL: "https://www.linkedin.com/learning", Type: "course", Provider: "LinkedIn Learning"},
				{Title: "Mock interviews with peers", URL: "https://www.pramp.com", Type: "project", Provider: "Pramp"},
				{Title: "Salary research for your region", URL: "https://www.levels.fyi", Type: "project", Provider: "Levels.fyi"},
			},
		},
	}
}

// curated maps normalized "industry|target role" pairs to hand-maintained
// milestone templates with verified resources.
var curated = map[string][]modelMilestone{
	"technology|data scientist": {
		{
			Title:           "Strengthen Python and Statistics Foundations",
			Description:     "Get fluent in Python for data work and refresh the probability and statistics every modeling decision rests on.",
			EstimatedHours:  40,
			MarketRelevance: "Screening rounds for data roles lean heavily on Python fluency and statistical reasoning.",
			Resources: []Resource{
				{Title: "Python for Everybody Specialization", URL: "https://www.coursera.org/specializations/python", Type: "course", Provider: "Coursera", Extra: map[string]string{"cost": "Free to audit"}},
				{Title: "Practical Statistics for Data Scientists", URL: "https://www.oreilly.com/library/view/practical-statistics-for/9781492072935/", Type: "book", Provider: "O'Reilly", Extra: map[string]string{"author": "Bruce, Bruce & Gedeck"}},
				{Title: "Statistics and Probability", URL: "https://www.khanacademy.org/math/statistics-probability", Type: "course", Provider: "Khan Academy", Extra: map[string]string{"cost": "Free"}},
			},
		},
		{
			Title:           "Master Data Wrangling and SQL",
			Description:     "Practice cleaning, joining and reshaping messy datasets with pandas, and write analytical SQL without reaching for documentation.",
			EstimatedHours:  35,
			MarketRelevance: "Most interview take-homes are wrangling exercises before any modeling starts.",
			Resources: []Resource{
				{Title: "Kaggle Learn: Pandas", URL: "https://www.kaggle.com/learn/pandas", Type: "course", Provider: "Kaggle", Extra: map[string]string{"cost": "Free"}},
				{Title: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial/", Type: "course", Provider: "Mode", Extra: map[string]string{"cost": "Free"}},
				{Title: "Data Cleaning project on a public dataset", Type: "project"},
			},
		},
		{
			Title:           "Learn Core Machine Learning",
			Description:     "Work through supervised and unsupervised learning end to end: framing, training, validation and error analysis with scikit-learn.",
			EstimatedHours:  50,
			MarketRelevance: "Hiring loops expect you to explain bias/variance trade-offs on models you actually built.",
			Resources: []Resource{
				{Title: "Machine Learning Specialization", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Type: "course", Provider: "Coursera", Extra: map[string]string{"rating": "4.9/5"}},
				{Title: "Hands-On Machine Learning with Scikit-Learn, Keras & TensorFlow", URL: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781098125967/", Type: "book", Provider: "O'Reilly", Extra: map[string]string{"author": "Aurélien Géron"}},
				{Title: "scikit-learn User Guide", URL: "https://scikit-learn.org/stable/user_guide.html", Type: "course", Provider: "scikit-learn", Extra: map[string]string{"cost": "Free"}},
			},
		},
		{
			Title:           "Build a Portfolio with Real Datasets",
			Description:     "Ship two or three end-to-end analyses on real data, from question to cleaned dataset to model to written conclusions.",
			EstimatedHours:  45,
			MarketRelevance: "A public portfolio substitutes for job experience when switching into the field.",
			Resources: []Resource{
				{Title: "Kaggle Competitions", URL: "https://www.kaggle.com/competitions", Type: "project", Provider: "Kaggle"},
				{Title: "End-to-end prediction project with a write-up", Type: "project"},
				{Title: "Google Dataset Search", URL: "https://datasetsearch.research.google.com", Type: "project", Provider: "Google"},
			},
		},
		{
			Title:           "Learn Model Deployment and MLOps Basics",
			Description:     "Take one portfolio model to production quality: an API around it, experiment tracking, and monitoring for drift.",
			EstimatedHours:  35,
			MarketRelevance: "Teams increasingly expect data scientists to ship models, not hand them off.",
			Resources: []Resource{
				{Title: "Made With ML", URL: "https://madewithml.com", Type: "course", Provider: "Made With ML", Extra: map[string]string{"cost": "Free"}},
				{Title: "Designing Machine Learning Systems", URL: "https://www.oreilly.com/library/view/designing-machine-learning/9781098107956/", Type: "book", Provider: "O'Reilly", Extra: map[string]string{"author": "Chip Huyen"}},
				{Title: "MLflow Documentation", URL: "https://mlflow.org/docs/latest/index.html", Type: "course", Provider: "MLflow", Extra: map[string]string{"cost": "Free"}},
			},
		},
		{
			Title:           "Prepare for Data Science Interviews",
			Description:     "Drill SQL and statistics questions, rehearse case walkthroughs of your portfolio, and practice the product-sense round.",
			EstimatedHours:  30,
			MarketRelevance: "Structured interview prep shortens the search by weeks at current competition levels.",
			Resources: []Resource{
				{Title: "StrataScratch", URL: "https://www.stratascratch.com", Type: "course", Provider: "StrataScratch"},
				{Title: "Ace the Data Science Interview", URL: "https://www.acethedatascienceinterview.com", Type: "book", Extra: map[string]string{"author": "Singh & Huo"}},
				{Title: "Mock interviews with practitioners", URL: "https://www.pramp.com", Type: "project", Provider: "Pramp"},
			},
		},
	},
	"technology|software engineer": {
		{
			Title:           "Master Programming Fundamentals",
			Description:     "Build a working command of one mainstream language plus the basics of memory, types and debugging, through a rigorous introductory course.",
			EstimatedHours:  45,
			MarketRelevance: "Fundamentals outlast frameworks; every later milestone builds on them.",
			Resources: []Resource{
				{Title: "CS50: Introduction to Computer Science", URL: "https://cs50.harvard.edu/x/", Type: "course", Provider: "Harvard / edX", Extra: map[string]string{"cost": "Free"}},
				{Title: "The Odin Project: Foundations", URL: "https://www.theodinproject.com/paths/foundations", Type: "course", Provider: "The Odin Project", Extra: map[string]string{"cost": "Free"}},
				{Title: "Exercism practice tracks", URL: "https://exercism.org", Type: "project", Provider: "Exercism", Extra: map[string]string{"cost": "Free"}},
			},
		},
		{
			Title:           "Learn Data Structures and Algorithms",
			Description:     "Cover arrays through graphs and the standard algorithm patterns, then apply them on timed problem sets.",
			EstimatedHours:  50,
			MarketRelevance: "Technical screens at most companies still start with algorithm problems.",
			Resources: []Resource{
				{Title: "NeetCode Roadmap", URL: "https://neetcode.io/roadmap", Type: "course", Provider: "NeetCode", Extra: map[string]string{"cost": "Free"}},
				{Title: "Grokking Algorithms", URL: "https://www.manning.com/books/grokking-algorithms-second-edition", Type: "book", Provider: "Manning", Extra: map[string]string{"author": "Aditya Bhargava"}},
				{Title: "LeetCode problem sets", URL: "https://leetcode.com", Type: "project", Provider: "LeetCode"},
			},
		},
		{
			Title:           "Build Full-Stack Web Applications",
			Description:     "Learn the web platform end to end: HTTP, a frontend framework, a backend service and how they fit together in a deployed app.",
			EstimatedHours:  55,
			MarketRelevance: "Full-stack capability is the most common requirement in junior and mid-level postings.",
			Resources: []Resource{
				{Title: "Full Stack Open", URL: "https://fullstackopen.com/en/", Type: "course", Provider: "University of Helsinki", Extra: map[string]string{"cost": "Free"}},
				{Title: "MDN Web Docs learning area", URL: "https://developer.mozilla.org/en-US/docs/Learn", Type: "course", Provider: "MDN", Extra: map[string]string{"cost": "Free"}},
				{Title: "Deploy a three-tier app of your own design", Type: "project"},
			},
		},
		{
			Title:           "Work with Databases and APIs",
			Description:     "Design relational schemas, write production-shaped SQL, and build a documented REST API with authentication on top.",
			EstimatedHours:  40,
			MarketRelevance: "Interviews probe schema design and API trade-offs as much as coding.",
			Resources: []Resource{
				{Title: "PostgreSQL Tutorial", URL: "https://www.postgresqltutorial.com", Type: "course", Provider: "PostgreSQL Tutorial", Extra: map[string]string{"cost": "Free"}},
				{Title: "Designing Data-Intensive Applications", URL: "https://www.oreilly.com/library/view/designing-data-intensive-applications/9781491903063/", Type: "book", Provider: "O'Reilly", Extra: map[string]string{"author": "Martin Kleppmann"}},
				{Title: "Build and document a REST API with auth", Type: "project"},
			},
		},
		{
			Title:           "Ship Projects and Contribute to Open Source",
			Description:     "Put code where employers can read it: polish two portfolio projects and land a few merged pull requests in active repositories.",
			EstimatedHours:  45,
			MarketRelevance: "Merged PRs in real projects are the strongest junior-engineer signal besides referrals.",
			Resources: []Resource{
				{Title: "First Contributions", URL: "https://github.com/firstcontributions/first-contributions", Type: "project", Provider: "GitHub", Extra: map[string]string{"cost": "Free"}},
				{Title: "Good First Issue index", URL: "https://goodfirstissue.dev", Type: "project", Provider: "goodfirstissue.dev"},
				{Title: "Portfolio project with CI and tests", Type: "project"},
			},
		},
		{
			Title:           "Prepare for Engineering Interviews",
			Description:     "Rehearse coding rounds under time pressure, learn the system design interview format, and rehearse behavioral stories.",
			EstimatedHours:  35,
			MarketRelevance: "Candidates who rehearse the loop format convert far more onsites into offers.",
			Resources: []Resource{
				{Title: "System Design Interview: An Insider's Guide", URL: "https://www.amazon.com/System-Design-Interview-insiders-Second/dp/B08CMF2CQF", Type: "book", Extra: map[string]string{"author": "Alex Xu"}},
				{Title: "Pramp peer mock interviews", URL: "https://www.pramp.com", Type: "project", Provider: "Pramp", Extra: map[string]string{"cost": "Free"}},
				{Title: "Tech Interview Handbook", URL: "https://www.techinterviewhandbook.org", Type: "course", Provider: "Tech Interview Handbook", Extra: map[string]string{"cost": "Free"}},
			},
		},
	},
	"technology|product manager": {
		{
			Title:           "Learn Product Management Fundamentals",
			Description:     "Understand how product teams discover, prioritize and ship: the PM role, product strategy and working with engineering and design.",
			EstimatedHours:  35,
			MarketRelevance: "PM interviews assume fluency in the discovery-to-delivery vocabulary from day one.",
			Resources: []Resource{
				{Title: "Inspired: How to Create Tech Products Customers Love", URL: "https://www.svpg.com/books/inspired-how-to-create-tech-products-customers-love-2nd-edition/", Type: "book", Provider: "SVPG", Extra: map[string]string{"author": "Marty Cagan"}},
				{Title: "Digital Product Management", URL: "https://www.coursera.org/learn/uva-darden-digital-product-management", Type: "course", Provider: "Coursera", Extra: map[string]string{"cost": "Free to audit"}},
				{Title: "Lenny's Newsletter archive", URL: "https://www.lennysnewsletter.com", Type: "course", Provider: "Substack"},
			},
		},
		{
			Title:           "Practice User Research and Discovery",
			Description:     "Run structured discovery: interview users, synthesize findings into opportunities, and validate solutions before building.",
			EstimatedHours:  30,
			MarketRelevance: "Continuous discovery is the core competency hiring managers probe in case rounds.",
			Resources: []Resource{
				{Title: "Continuous Discovery Habits", URL: "https://www.producttalk.org/continuous-discovery-habits/", Type: "book", Provider: "Product Talk", Extra: map[string]string{"author": "Teresa Torres"}},
				{Title: "Nielsen Norman Group articles on research methods", URL: "https://www.nngroup.com/articles/", Type: "course", Provider: "NN/g", Extra: map[string]string{"cost": "Free"}},
				{Title: "Five real user interviews with a synthesis doc", Type: "project"},
			},
		},
		{
			Title:           "Get Fluent in Product Data and Experiments",
			Description:     "Learn enough SQL to self-serve, define activation and retention metrics, and design trustworthy A/B tests.",
			EstimatedHours:  35,
			MarketRelevance: "Data-fluent PMs clear analytical screens that filter out most career switchers.",
			Resources: []Resource{
				{Title: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial/", Type: "course", Provider: "Mode", Extra: map[string]string{"cost": "Free"}},
				{Title: "Lean Analytics", URL: "https://www.oreilly.com/library/view/lean-analytics/9781449335687/", Type: "book", Provider: "O'Reilly", Extra: map[string]string{"author": "Croll & Yoskovitz"}},
				{Title: "A/B Testing by Google", URL: "https://www.udacity.com/course/ab-testing--ud257", Type: "course", Provider: "Udacity", Extra: map[string]string{"cost": "Free"}},
			},
		},
		{
			Title:           "Build Product Case Studies",
			Description:     "Produce two portfolio artifacts: a teardown of an existing product and a full spec for an improvement you would ship, with metrics.",
			EstimatedHours:  40,
			MarketRelevance: "Case studies let switchers demonstrate judgment without prior PM title.",
			Resources: []Resource{
				{Title: "Product teardown with opportunity sizing", Type: "project"},
				{Title: "One-pager and PRD for a shipped-quality feature", Type: "project"},
				{Title: "Cracking the PM Interview", URL: "https://www.crackingthepminterview.com", Type: "book", Extra: map[string]string{"author": "McDowell & Bavaro"}},
			},
		},
		{
			Title:           "Prepare for PM Interviews",
			Description:     "Drill the standard rounds: product sense, execution and metrics, behavioral stories, and estimation, with timed mock sessions.",
			EstimatedHours:  30,
			MarketRelevance: "PM loops are format-heavy; rehearsed structure is the main differentiator.",
			Resources: []Resource{
				{Title: "Exponent PM interview course", URL: "https://www.tryexponent.com", Type: "course", Provider: "Exponent"},
				{Title: "Decode and Conquer", URL: "https://www.lewis-lin.com/decode-and-conquer", Type: "book", Extra: map[string]string{"author": "Lewis C. Lin"}},
				{Title: "Weekly mock interviews with a peer group", Type: "project"},
			},
		},
	},
}
