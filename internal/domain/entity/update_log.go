package entity

// UpdateLog registro de frescor de uma fonte do ETL; exibido no cabeçalho de
// cada módulo. Date e Time ficam como texto porque a exibição é literal.
type UpdateLog struct {
	SourceID string
	Date     string
	Time     string
	Period   string
	Inserted int64
	Updated  int64
}

// UpdateLogNA placeholder quando a fonte nunca foi carregada.
func UpdateLogNA(sourceID string) UpdateLog {
	return UpdateLog{SourceID: sourceID, Date: "N/A", Time: "N/A", Period: "N/A"}
}
