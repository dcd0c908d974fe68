package content

var siteProfile = Profile{
	Name:        "Vivek Kumar",
	Headline:    "Computer Engineering Student & Aspiring Software Developer",
	Tagline:     "Building innovative solutions through code | MERN Stack Developer | AI/ML Enthusiast",
	Location:    "Gaya, Bihar, India",
	Email:       "vivek888gaya@gmail.com",
	LinkedInURL: "https://www.linkedin.com/in/vivekkumar-285708383",
	GitHubURL:   "https://github.com/vivek888gaya",
	AboutMD: `
Hi! I'm **Vivek Kumar**, a passionate Computer Engineering student at Government
Engineering College, Banka, pursuing my Bachelor of Technology (B.Tech) in
Computer Science from Bihar Engineering University (BEU), Patna (2025-2028).

I'm driven by the desire to solve real-world problems through technology. My
journey in software development spans multiple programming languages including
C++, Java, and Python, with growing expertise in the MERN stack (MongoDB,
Express.js, React, Node.js).

Currently expanding my knowledge in AI/ML fundamentals and preparing to dive
deeper into machine learning algorithms and neural networks.
`,
}

var siteSkills = []SkillCategory{
	{
		CategoryName: "Programming Languages",
		Items: []Skill{
			{Name: "C++", Proficiency: Advanced, IconKey: "cpp"},
			{Name: "Java", Proficiency: Intermediate, IconKey: "java"},
			{Name: "Python", Proficiency: Intermediate, IconKey: "python"},
			{Name: "JavaScript", Proficiency: Intermediate, IconKey: "javascript"},
		},
	},
	{
		CategoryName: "Web Development",
		Items: []Skill{
			{Name: "React.js", Proficiency: Intermediate, IconKey: "react"},
			{Name: "Node.js", Proficiency: Intermediate, IconKey: "nodejs"},
			{Name: "Express.js", Proficiency: Intermediate, IconKey: "express"},
			{Name: "MongoDB", Proficiency: Intermediate, IconKey: "mongodb"},
			{Name: "HTML5", Proficiency: Advanced, IconKey: "html"},
			{Name: "CSS3", Proficiency: Advanced, IconKey: "css"},
		},
	},
	{
		CategoryName: "AI/ML (Learning)",
		Items: []Skill{
			{Name: "Python Libraries", Proficiency: Basic, IconKey: "python"},
			{Name: "Machine Learning", Proficiency: Basic, IconKey: "ml"},
			{Name: "Data Analysis", Proficiency: Basic, IconKey: "data"},
			{Name: "TensorFlow", Proficiency: Basic, IconKey: "tensorflow"},
		},
	},
	{
		CategoryName: "Other",
		Items: []Skill{
			{Name: "Git", Proficiency: Intermediate, IconKey: "git"},
			{Name: "Problem Solving", Proficiency: Advanced, IconKey: "puzzle"},
			{Name: "Prompt Engineering", Proficiency: Intermediate, IconKey: "prompt"},
			{Name: "Algorithm Design", Proficiency: Intermediate, IconKey: "algorithm"},
		},
	},
}

var siteProjects = []Project{
	{
		Title:            "Smart Library Management System",
		ShortDescription: "A comprehensive library management system built with Java and MySQL, featuring book tracking, member management, and automated notifications.",
		LongDescription:  "This Smart Library Management System is designed to streamline library operations with features like automated book cataloging, member registration, fine calculation, and real-time availability tracking. The system includes admin panels for librarians and user-friendly interfaces for library members.",
		Technologies:     []string{"Java", "MySQL", "Swing", "JDBC"},
		Features: []string{
			"Book cataloging and search functionality",
			"Member registration and management",
			"Automated fine calculation for overdue books",
			"Real-time book availability tracking",
			"Admin dashboard for library management",
		},
		Status: "Completed",
		Role:   "Solo developer",
	},
	{
		Title:            "Personal Portfolio Website",
		ShortDescription: "A modern, responsive portfolio website showcasing projects and skills with smooth animations and clean design.",
		LongDescription:  "This portfolio website demonstrates modern web development practices with a focus on user experience and performance. It features responsive design, smooth entrance animations, a project showcase with detailed views, and a contact form wired to a small status-check API.",
		Technologies:     []string{"React.js", "Node.js", "FastAPI", "MongoDB", "CSS3", "JavaScript"},
		Features: []string{
			"Responsive design for all devices",
			"Smooth animations and transitions",
			"Contact form with backend integration",
			"Project showcase with detailed views",
			"Optimized performance and SEO",
		},
		Status:  "Production (Live)",
		Role:    "Design & development",
		LiveURL: "https://vivek-portfolio.onrender.com",
		DemoURL: "https://vivek-portfolio.onrender.com",
		Note:    "The site you are looking at right now.",
	},
	{
		Title:            "AI-Powered Task Scheduler",
		ShortDescription: "An intelligent task scheduling application using Python and TensorFlow to optimize daily productivity through machine learning algorithms.",
		LongDescription:  "This AI-powered task scheduler leverages machine learning to analyze user behavior patterns and optimize task scheduling for maximum productivity. The system learns from user preferences and completion rates to suggest optimal time slots for different types of tasks.",
		Technologies:     []string{"Python", "TensorFlow", "Pandas", "NumPy", "Flask"},
		Features: []string{
			"Machine learning-based task prioritization",
			"User behavior pattern analysis",
			"Intelligent time slot recommendations",
			"Productivity analytics and insights",
			"Integration with calendar applications",
		},
		Status: "In Development",
		Note:   "Model training is ongoing; a public demo will follow.",
	},
}

var siteCertifications = []Certification{
	{
		ID:            1,
		Name:          "Programming in C++: A Hands-on Introduction",
		Issuer:        "Codio",
		Platform:      "Coursera",
		Date:          "March 2025",
		CredentialURL: "https://www.coursera.org/account/accomplishments/specialization/CPP2025VK",
		LogoKey:       "coursera",
	},
	{
		ID:       2,
		Name:     "The Joy of Computing using Python",
		Issuer:   "IIT Madras",
		Platform: "NPTEL",
		Date:     "December 2024",
		LogoKey:  "nptel",
	},
	{
		ID:            3,
		Name:          "Web Development Bootcamp",
		Issuer:        "Dr. Angela Yu",
		Platform:      "Udemy",
		Date:          "August 2025",
		CredentialURL: "https://www.udemy.com/certificate/UC-webdev-vk",
		LogoKey:       "udemy",
	},
	{
		ID:       4,
		Name:     "Machine Learning Foundations",
		Issuer:   "AWS Academy",
		Platform: "AWS Educate",
		Date:     "June 2025",
		LogoKey:  "aws",
	},
}

var siteEducation = []EducationEntry{
	{
		Degree:      "Bachelor of Technology (B.Tech) - Computer Science",
		Institution: "Government Engineering College, Banka",
		University:  "Bihar Engineering University (BEU), Patna",
		Duration:    "2025 - 2028",
	},
}

var siteExperience = []ExperienceEntry{
	{
		Title:        "AI/ML Research & Development",
		Organization: "Self-Directed Learning",
		Duration:     "2024 - Present",
		Description:  "Exploring machine learning algorithms, neural networks, and AI applications through hands-on projects and online courses.",
	},
	{
		Title:        "Competitive Programming",
		Organization: "Codeforces, LeetCode",
		Duration:     "2023 - Present",
		Description:  "Solved 200+ problems across various platforms, improving algorithmic thinking and problem-solving skills.",
	},
	{
		Title:        "Open Source Contribution",
		Organization: "GitHub",
		Duration:     "Planning",
		Description:  "Preparing to contribute to open source projects in web development and machine learning domains.",
	},
}
