package model

const NoSectionsName = "<No sections>"

type Section struct {
	Name         string `json:"name"`
	StartMeasure int    `json:"start_measure"`
	EndMeasure   int    `json:"end_measure"`
	Length       int    `json:"length"`
}
