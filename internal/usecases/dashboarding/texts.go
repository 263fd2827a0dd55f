package dashboarding

const (
	landingTitle = "MTA Ridership Recovery Dashboard"
	landingIntro = "This dashboard explores MTA ridership trends and COVID-19 recovery patterns " +
		"across different transit services in New York City."
	landingCredits = "Team bouncing-penguin: Haixin & Hanghai Li"

	ridershipTitle      = "MTA Daily Ridership Analysis"
	seriesTitle         = "MTA Daily Ridership by Service"
	seriesYAxis         = "Estimated Ridership"
	seriesCategory      = "Service"
	seriesValue         = "Ridership"
	recoveryTitle       = "Ridership Recovery: % of Comparable Pre-Pandemic Day"
	recoveryValue       = "% of Pre-Pandemic"
	referenceAnnotation = "Pre-Pandemic Level"
	referenceColor      = "gray"
	weekdayTitle        = "Average Subway Ridership: Weekday vs Weekend"
	weekdayXAxis        = "Type"
	weekdayYAxis        = "Average Estimated Ridership"

	caseCountTitle      = "NYC COVID-19 Cases (Second Dataset)"
	caseCountIntro      = "This page brings in NYC COVID-19 case data to contextualize MTA ridership recovery patterns."
	caseCountChartTitle = "NYC Daily COVID-19 Cases"
	caseCountYAxis      = "Case Count"
	caseCountConnection = "Connection to MTA Ridership: Comparing COVID case surges with ridership " +
		"dips helps us understand how public health events drive transit behavior."

	dateAxis = "Date"
)

var researchQuestions = []string{
	"How do weekday vs. weekend travel patterns differ across MTA services?",
	"How have holidays impacted ridership?",
	"What are the recovery rates across different MTA services since COVID-19?",
}
