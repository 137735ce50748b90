package mail

type LeadAssignedData struct {
	KAMName        string
	RestaurantName string
	LeadID         string
}

type CallReminderData struct {
	KAMName        string
	RestaurantName string
	LeadID         string
	NextCallDate   string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
