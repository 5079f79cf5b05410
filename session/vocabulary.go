package session

// The fixed output vocabulary. These are the only strings Dispatch ever
// returns as a successful result; path output is built separately (see
// formatPath) but uses the same space-separated, no-trailing-space
// convention.
const (
	outAdded         = "aggiunta"
	outNotAdded      = "non aggiunta"
	outDemolished    = "demolita"
	outNotDemolished = "non demolita"
	outScrapped      = "rottamata"
	outNotScrapped   = "non rottamata"
	outNoPath        = "nessun percorso"
)

const (
	cmdAddStation    = "aggiungi-stazione"
	cmdRemoveStation = "demolisci-stazione"
	cmdAddCar        = "aggiungi-auto"
	cmdScrapCar      = "rottama-auto"
	cmdPlanPath      = "pianifica-percorso"
)
