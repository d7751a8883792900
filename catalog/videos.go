package catalog

import "writeassess/models"

// Videos returns the instructional videos used by the video practice path
func Videos() []models.Video {
	return []models.Video{
		{ID: "qFjnW3A4PpQ", Title: "How to Make Scrambled Eggs", Duration: "3:45"},
		{ID: "8SC_2pgByog", Title: "How to Tie a Tie", Duration: "2:30"},
		{ID: "nothvIGnmenU", Title: "How to Make Paper Airplane", Duration: "2:15"},
		{ID: "hou0lU8WMgo", Title: "How to Make French Toast", Duration: "4:20"},
		{ID: "hWi3NwDLbcM", Title: "How to Fold a Fitted Sheet", Duration: "3:00"},
	}
}
