package domain

// SampleProject is the project the store is seeded with at startup.
func SampleProject() Project {
	return Project{
		Name: "Sample Project",
		Layers: []Layer{
			{
				ID: 1, Name: "React UI", Type: TypeFrontend, Status: "Active",
				Description:      "User interface layer",
				Technology:       "React 18, TypeScript",
				Responsibilities: "Render UI, handle user interactions",
				Connections:      []int{2}, Dependencies: []int{},
				Visible: true,
				Substacks: []Layer{
					{
						ID: 11, Name: "Components", Type: TypeFrontend, Status: "Active",
						Description:      "React components",
						Technology:       "React",
						Responsibilities: "Reusable UI components",
						Connections:      []int{}, Dependencies: []int{},
						Visible: true, Substacks: []Layer{},
					},
					{
						ID: 12, Name: "State Management", Type: TypeFrontend, Status: "Active",
						Description:      "Redux store",
						Technology:       "Redux Toolkit",
						Responsibilities: "Global state management",
						Connections:      []int{}, Dependencies: []int{},
						Visible: true, Substacks: []Layer{},
					},
				},
			},
			{
				ID: 2, Name: "REST API", Type: TypeAPI, Status: "Active",
				Description:      "API gateway",
				Technology:       "Express.js",
				Responsibilities: "Route requests, authentication",
				Connections:      []int{3}, Dependencies: []int{1},
				Visible: true, Substacks: []Layer{},
			},
			{
				ID: 3, Name: "Business Logic", Type: TypeBackend, Status: "Active",
				Description:      "Core business logic",
				Technology:       "Node.js",
				Responsibilities: "Process business rules",
				Connections:      []int{4}, Dependencies: []int{2},
				Visible: true, Substacks: []Layer{},
			},
			{
				ID: 4, Name: "PostgreSQL", Type: TypeDatabase, Status: "Active",
				Description:      "Primary database",
				Technology:       "PostgreSQL 15",
				Responsibilities: "Data persistence",
				Connections:      []int{}, Dependencies: []int{3},
				Visible: true, Substacks: []Layer{},
			},
		},
	}
}
