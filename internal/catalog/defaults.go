package catalog

// Default content set. Balance values follow a ~1.15 growth curve with six
// tiers stretching from the first notepad to end-game absurdity.

const (
	maxUpgradeLevel = 1000
	maxAssetLevel   = 500
)

func defaultUpgrades() []Entry {
	return []Entry{
		// Tier 1: basic tools
		{ID: "notepad", Name: "Notepad", Description: "The most basic text editor", BaseCost: 10, Effect: 0.2, MaxLevel: maxUpgradeLevel, Tier: 1, Icon: "notepad.png"},
		{ID: "better_keyboard", Name: "Better Keyboard", Description: "Type faster with a mechanical keyboard", BaseCost: 50, Effect: 0.5, MaxLevel: maxUpgradeLevel, Tier: 1, Icon: "keyboard.png"},
		{ID: "syntax_highlighting", Name: "Syntax Highlighting", Description: "Colors make code more readable", BaseCost: 200, Effect: 1, MaxLevel: maxUpgradeLevel, Tier: 1, Icon: "syntax.png"},
		{ID: "code_snippets", Name: "Code Snippets", Description: "Reuse common code patterns", BaseCost: 500, Effect: 2, MaxLevel: maxUpgradeLevel, Tier: 1, Icon: "snippet.png"},
		{ID: "autocomplete", Name: "Auto-Complete", Description: "Suggestions as you type", BaseCost: 1_000, Effect: 3, MaxLevel: maxUpgradeLevel, Tier: 1, Icon: "autocomplete.png"},

		// Tier 2: IDE features
		{ID: "error_detection", Name: "Error Detection", Description: "Find errors before running the code", BaseCost: 2_500, Effect: 5, MaxLevel: maxUpgradeLevel, Tier: 2, Icon: "error.png"},
		{ID: "ide_plugins", Name: "IDE Plugins", Description: "Enhance productivity with plugins", BaseCost: 5_000, Effect: 10, MaxLevel: maxUpgradeLevel, Tier: 2, Icon: "plugin.png"},
		{ID: "version_control", Name: "Version Control", Description: "Track changes in your code", BaseCost: 10_000, Effect: 15, MaxLevel: maxUpgradeLevel, Tier: 2, Icon: "git.png"},
		{ID: "linter", Name: "Code Linter", Description: "Automatically fix code style issues", BaseCost: 25_000, Effect: 25, MaxLevel: maxUpgradeLevel, Tier: 2, Icon: "linter.png"},
		{ID: "debugger", Name: "Debugger", Description: "Step through code to find bugs", BaseCost: 50_000, Effect: 40, MaxLevel: maxUpgradeLevel, Tier: 2, Icon: "debug.png"},

		// Tier 3: professional tools
		{ID: "code_formatter", Name: "Code Formatter", Description: "Maintain consistent code style", BaseCost: 100_000, Effect: 60, MaxLevel: maxUpgradeLevel, Tier: 3, Icon: "format.png"},
		{ID: "test_framework", Name: "Test Framework", Description: "Automate code testing", BaseCost: 250_000, Effect: 80, MaxLevel: maxUpgradeLevel, Tier: 3, Icon: "test.png"},
		{ID: "pair_programming", Name: "Pair Programming", Description: "Two programmers, one keyboard", BaseCost: 500_000, Effect: 120, MaxLevel: maxUpgradeLevel, Tier: 3, Icon: "pair.png"},
		{ID: "code_review_tools", Name: "Code Review Tools", Description: "Improve code quality with peer feedback", BaseCost: 1_000_000, Effect: 200, MaxLevel: maxUpgradeLevel, Tier: 3, Icon: "review.png"},
		{ID: "continuous_integration", Name: "Continuous Integration", Description: "Automatically build and test code", BaseCost: 2_500_000, Effect: 350, MaxLevel: maxUpgradeLevel, Tier: 3, Icon: "ci.png"},

		// Tier 4: advanced technologies
		{ID: "ai_assistant", Name: "AI Assistant", Description: "Get coding help from AI", BaseCost: 5_000_000, Effect: 500, MaxLevel: maxUpgradeLevel, Tier: 4, Icon: "ai.png"},
		{ID: "code_generation", Name: "Code Generation", Description: "Generate boilerplate code automatically", BaseCost: 10_000_000, Effect: 800, MaxLevel: maxUpgradeLevel, Tier: 4, Icon: "generate.png"},
		{ID: "smart_refactoring", Name: "Smart Refactoring", Description: "AI-assisted code restructuring", BaseCost: 25_000_000, Effect: 1_200, MaxLevel: maxUpgradeLevel, Tier: 4, Icon: "refactor-smart.png"},
		{ID: "adaptive_compiler", Name: "Adaptive Compiler", Description: "Compiler that learns your coding patterns", BaseCost: 50_000_000, Effect: 2_000, MaxLevel: maxUpgradeLevel, Tier: 4, Icon: "compiler.png"},
		{ID: "neural_optimizer", Name: "Neural Code Optimizer", Description: "Neural network optimization of your code", BaseCost: 100_000_000, Effect: 3_500, MaxLevel: maxUpgradeLevel, Tier: 4, Icon: "optimizer.png"},

		// Tier 5: future tech
		{ID: "quantum_keyboard", Name: "Quantum Keyboard", Description: "Type in multiple universes simultaneously", BaseCost: 250_000_000, Effect: 5_000, MaxLevel: 500, Tier: 5, Icon: "quantum.png"},
		{ID: "thought_interface", Name: "Thought Interface", Description: "Code directly from your thoughts", BaseCost: 500_000_000, Effect: 8_000, MaxLevel: 500, Tier: 5, Icon: "thought.png"},
		{ID: "automatic_refactoring", Name: "Automatic Refactoring", Description: "Your code refactors itself for better efficiency", BaseCost: 1_000_000_000, Effect: 15_000, MaxLevel: 500, Tier: 5, Icon: "refactor.png"},
		{ID: "holographic_interface", Name: "Holographic Interface", Description: "Manipulate code in 3D space", BaseCost: 5_000_000_000, Effect: 30_000, MaxLevel: 300, Tier: 5, Icon: "hologram.png"},

		// Tier 6: sci-fi tech
		{ID: "time_manipulation_ide", Name: "Time-Manipulation IDE", Description: "Slow down time to code faster than humanly possible", BaseCost: 10_000_000_000, Effect: 50_000, MaxLevel: 200, Tier: 6, Icon: "time.png"},
		{ID: "quantum_computing", Name: "Quantum Computing", Description: "Harness quantum superposition for coding", BaseCost: 50_000_000_000, Effect: 100_000, MaxLevel: 200, Tier: 6, Icon: "quantum-computer.png"},
		{ID: "consciousness_upload", Name: "Consciousness Upload", Description: "Become one with your code", BaseCost: 100_000_000_000, Effect: 250_000, MaxLevel: 150, Tier: 6, Icon: "upload.png"},
		{ID: "reality_compiler", Name: "Reality Compiler", Description: "Your code directly alters reality", BaseCost: 500_000_000_000, Effect: 500_000, MaxLevel: 100, Tier: 6, Icon: "reality.png"},
		{ID: "universal_programmer", Name: "Universal Programmer", Description: "Program the fundamental laws of the universe", BaseCost: 1_000_000_000_000, Effect: 1_000_000, MaxLevel: 10, Tier: 6, Icon: "universe.png"},
	}
}

func defaultAssets() []Entry {
	return []Entry{
		// Tier 1: basic staff
		{ID: "intern", Name: "Intern", Description: "Hires a coding intern", BaseCost: 100, Effect: 0.1, MaxLevel: maxAssetLevel, Tier: 1, Icon: "intern.png"},
		{ID: "student_coder", Name: "Student Coder", Description: "Part-time student looking for experience", BaseCost: 250, Effect: 0.3, MaxLevel: maxAssetLevel, Tier: 1, Icon: "student.png"},
		{ID: "code_bootcamp_grad", Name: "Bootcamp Graduate", Description: "Recently completed a coding bootcamp", BaseCost: 500, Effect: 0.6, MaxLevel: maxAssetLevel, Tier: 1, Icon: "bootcamp.png"},
		{ID: "junior_dev", Name: "Junior Developer", Description: "Hires a junior programmer", BaseCost: 1_000, Effect: 1.2, MaxLevel: maxAssetLevel, Tier: 1, Icon: "junior.png"},

		// Tier 2: professional staff
		{ID: "mid_level_dev", Name: "Mid-Level Developer", Description: "Developer with a few years of experience", BaseCost: 2_500, Effect: 2.5, MaxLevel: maxAssetLevel, Tier: 2, Icon: "mid.png"},
		{ID: "qa_engineer", Name: "QA Engineer", Description: "Finds and fixes bugs before they cause problems", BaseCost: 5_000, Effect: 4, MaxLevel: maxAssetLevel, Tier: 2, Icon: "qa.png"},
		{ID: "devops_specialist", Name: "DevOps Specialist", Description: "Streamlines your development pipeline", BaseCost: 10_000, Effect: 7, MaxLevel: maxAssetLevel, Tier: 2, Icon: "devops.png"},
		{ID: "senior_dev", Name: "Senior Developer", Description: "Hires an experienced programmer", BaseCost: 25_000, Effect: 12, MaxLevel: maxAssetLevel, Tier: 2, Icon: "senior.png"},

		// Tier 3: team structure
		{ID: "frontend_team", Name: "Frontend Team", Description: "Specialized in user interfaces", BaseCost: 50_000, Effect: 20, MaxLevel: maxAssetLevel, Tier: 3, Icon: "frontend.png"},
		{ID: "backend_team", Name: "Backend Team", Description: "Specialized in server-side code", BaseCost: 100_000, Effect: 35, MaxLevel: maxAssetLevel, Tier: 3, Icon: "backend.png"},
		{ID: "mobile_team", Name: "Mobile Dev Team", Description: "Specialized in mobile applications", BaseCost: 250_000, Effect: 60, MaxLevel: maxAssetLevel, Tier: 3, Icon: "mobile.png"},
		{ID: "dev_team", Name: "Full Dev Team", Description: "Hires a whole team of developers", BaseCost: 500_000, Effect: 100, MaxLevel: maxAssetLevel, Tier: 3, Icon: "team.png"},

		// Tier 4: organization structure
		{ID: "development_department", Name: "Development Department", Description: "A full department dedicated to coding", BaseCost: 1_000_000, Effect: 175, MaxLevel: maxAssetLevel, Tier: 4, Icon: "department.png"},
		{ID: "research_division", Name: "R&D Division", Description: "Pushing the boundaries of what's possible", BaseCost: 2_500_000, Effect: 300, MaxLevel: maxAssetLevel, Tier: 4, Icon: "research.png"},
		{ID: "ai_tools_division", Name: "AI Tools Division", Description: "Creating AI-powered development tools", BaseCost: 5_000_000, Effect: 500, MaxLevel: maxAssetLevel, Tier: 4, Icon: "ai-tools.png"},
		{ID: "ai_cluster", Name: "AI Code Cluster", Description: "Deploys AI to write code continuously", BaseCost: 10_000_000, Effect: 800, MaxLevel: maxAssetLevel, Tier: 4, Icon: "cluster.png"},

		// Tier 5: future tech teams
		{ID: "quantum_team", Name: "Quantum Programming Team", Description: "Specializes in quantum algorithms", BaseCost: 25_000_000, Effect: 1_500, MaxLevel: 300, Tier: 5, Icon: "quantum-team.png"},
		{ID: "neural_interface_lab", Name: "Neural Interface Lab", Description: "Developing direct brain-to-code interfaces", BaseCost: 50_000_000, Effect: 3_000, MaxLevel: 300, Tier: 5, Icon: "neural-lab.png"},
		{ID: "quantum_server", Name: "Quantum Server Farm", Description: "Computes code in parallel universes", BaseCost: 100_000_000, Effect: 5_000, MaxLevel: 250, Tier: 5, Icon: "quantum-server.png"},

		// Tier 6: sci-fi organizations
		{ID: "code_generators", Name: "Neural Code Generators", Description: "Advanced neural networks that generate entire codebases", BaseCost: 250_000_000, Effect: 10_000, MaxLevel: 200, Tier: 6, Icon: "neural.png"},
		{ID: "sentient_code_colony", Name: "Sentient Code Colony", Description: "Self-aware code that writes more of itself", BaseCost: 500_000_000, Effect: 20_000, MaxLevel: 150, Tier: 6, Icon: "sentient.png"},
		{ID: "time_loop_systems", Name: "Time Loop Systems", Description: "Code written in the future sent back to now", BaseCost: 1_000_000_000, Effect: 40_000, MaxLevel: 100, Tier: 6, Icon: "timeloop.png"},
		{ID: "multiverse_coding_network", Name: "Multiverse Coding Network", Description: "Collaborative coding across parallel universes", BaseCost: 5_000_000_000, Effect: 100_000, MaxLevel: 50, Tier: 6, Icon: "multiverse.png"},
		{ID: "cosmic_code_entity", Name: "Cosmic Code Entity", Description: "A being of pure code extending across space-time", BaseCost: 10_000_000_000, Effect: 250_000, MaxLevel: 10, Tier: 6, Icon: "cosmic.png"},
	}
}

func defaultThemes() []Theme {
	return []Theme{
		{Threshold: 0, Name: "Notepad", Description: "Basic text editor", CSS: "notepad.css"},
		{Threshold: 10_000, Name: "Terminal", Description: "Command line interface", CSS: "terminal.css"},
		{Threshold: 1_000_000, Name: "IDE Basic", Description: "Simple integrated development environment", CSS: "ide_basic.css"},
		{Threshold: 100_000_000, Name: "Modern IDE", Description: "Professional development environment", CSS: "modern_ide.css"},
		{Threshold: 10_000_000_000, Name: "Futuristic Interface", Description: "Next-gen programming interface", CSS: "futuristic.css"},
		{Threshold: 1_000_000_000_000, Name: "Virtual Holographic", Description: "Holographic programming experience", CSS: "holographic.css"},
	}
}
