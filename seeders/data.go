package seeders

// Demo dataset loaded by the seeder. All accounts share the password
// "password123".

var teamsData = []string{
	"Electrical Team",
	"Mechanical Team",
	"HVAC Team",
	"IT Support Team",
}

type userSeed struct {
	Name     string
	Email    string
	Role     string
	TeamName string
}

var usersData = []userSeed{
	{Name: "Admin User", Email: "admin@gearguard.com", Role: "ADMIN"},
	{Name: "John Doe", Email: "user@gearguard.com", Role: "USER"},
	{Name: "Mike Technician", Email: "tech1@gearguard.com", Role: "TECHNICIAN", TeamName: "Electrical Team"},
	{Name: "Sarah Mechanic", Email: "tech2@gearguard.com", Role: "TECHNICIAN", TeamName: "Mechanical Team"},
	{Name: "Tom HVAC Expert", Email: "tech3@gearguard.com", Role: "TECHNICIAN", TeamName: "HVAC Team"},
	{Name: "Alice IT Support", Email: "tech4@gearguard.com", Role: "TECHNICIAN", TeamName: "IT Support Team"},
	{Name: "Jane User", Email: "jane@gearguard.com", Role: "USER"},
}

type equipmentSeed struct {
	Name         string
	SerialNumber string
	Location     string
	Department   string
	TeamName     string
	Status       string
}

var equipmentData = []equipmentSeed{
	{"Generator 5000W", "GEN-001", "Building A - Floor 1", "Operations", "Electrical Team", "ACTIVE"},
	{"Air Compressor", "AC-102", "Workshop", "Maintenance", "Mechanical Team", "ACTIVE"},
	{"Hydraulic Press", "HP-205", "Factory Floor", "Production", "Mechanical Team", "ACTIVE"},
	{"HVAC Unit - Central", "HVAC-301", "Building B - Roof", "Facilities", "HVAC Team", "ACTIVE"},
	{"Server Rack Dell R740", "SRV-401", "Data Center", "IT", "IT Support Team", "ACTIVE"},
	{"Forklift Toyota", "FLT-501", "Warehouse", "Logistics", "Mechanical Team", "ACTIVE"},
	{"CNC Machine", "CNC-601", "Factory Floor", "Production", "Mechanical Team", "ACTIVE"},
	{"Backup Generator", "GEN-002", "Building A - Basement", "Operations", "Electrical Team", "ACTIVE"},
	{"Cooling Tower", "CT-701", "Building C - Roof", "Facilities", "HVAC Team", "ACTIVE"},
	{"UPS System", "UPS-801", "Data Center", "IT", "IT Support Team", "ACTIVE"},
}

type requestSeed struct {
	Subject         string
	SerialNumber    string
	TechnicianEmail string
	RequestType     string
	Status          string
	ScheduledDate   string
	DurationHours   float64
	CostEstimation  float64
	CompletionNotes string
	CreatorEmail    string
}

var requestsData = []requestSeed{
	{
		Subject:      "Generator not starting",
		SerialNumber: "GEN-001", TechnicianEmail: "tech1@gearguard.com",
		RequestType: "CORRECTIVE", Status: "NEW",
		CreatorEmail: "user@gearguard.com",
	},
	{
		Subject:      "Preventive maintenance - Air Compressor",
		SerialNumber: "AC-102", TechnicianEmail: "tech2@gearguard.com",
		RequestType: "PREVENTIVE", Status: "IN_PROGRESS", ScheduledDate: "2024-12-30",
		CreatorEmail: "admin@gearguard.com",
	},
	{
		Subject:      "Hydraulic Press leaking oil",
		SerialNumber: "HP-205", TechnicianEmail: "tech2@gearguard.com",
		RequestType: "CORRECTIVE", Status: "REPAIRED", ScheduledDate: "2024-12-25",
		DurationHours: 3.5, CostEstimation: 450.00,
		CompletionNotes: "Replaced seal and checked pressure levels",
		CreatorEmail:    "user@gearguard.com",
	},
	{
		Subject:      "HVAC Unit making noise",
		SerialNumber: "HVAC-301", TechnicianEmail: "tech3@gearguard.com",
		RequestType: "CORRECTIVE", Status: "IN_PROGRESS",
		CreatorEmail: "jane@gearguard.com",
	},
	{
		Subject:      "Server Rack temperature alert",
		SerialNumber: "SRV-401", TechnicianEmail: "tech4@gearguard.com",
		RequestType: "CORRECTIVE", Status: "NEW",
		CreatorEmail: "user@gearguard.com",
	},
	{
		Subject:      "Monthly forklift inspection",
		SerialNumber: "FLT-501",
		RequestType:  "PREVENTIVE", Status: "NEW", ScheduledDate: "2025-01-05",
		CreatorEmail: "admin@gearguard.com",
	},
	{
		Subject:      "CNC Machine calibration needed",
		SerialNumber: "CNC-601", TechnicianEmail: "tech2@gearguard.com",
		RequestType: "PREVENTIVE", Status: "REPAIRED", ScheduledDate: "2024-12-20",
		DurationHours: 2.0, CostEstimation: 200.00,
		CompletionNotes: "Calibrated successfully",
		CreatorEmail:    "admin@gearguard.com",
	},
	{
		Subject:      "Backup Generator test run",
		SerialNumber: "GEN-002", TechnicianEmail: "tech1@gearguard.com",
		RequestType: "PREVENTIVE", Status: "IN_PROGRESS", ScheduledDate: "2024-12-28",
		CreatorEmail: "admin@gearguard.com",
	},
}
