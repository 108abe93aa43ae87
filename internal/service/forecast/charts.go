package forecast

// ComplicationLabels are the complication kinds on the complications bar chart.
var ComplicationLabels = []string{
	"Фибрилляция предсердий",
	"Суправентрикулярная тахикардия",
	"Желудочковая тахикардия",
	"Фибрилляция желудочков",
	"Полная АВ блокада",
	"Отек легких",
	"Разрыв сердца",
	"Синдром Дресслера",
	"Хроническая сердечная недостаточность",
	"Рецидив инфаркта миокарда",
	"Постинфарктная стенокардия",
}

// CauseOfDeathLabels are the causes on the fatal outcome bar chart.
var CauseOfDeathLabels = []string{
	"Кардиогенный шок",
	"Отек легких",
	"Разрыв сердца",
	"Прогрессирование застойной сердечной недостаточности",
	"Тромбоэмболия",
	"Асистолия",
	"Фибрилляция желудочков",
}

// OutcomeLabels name the two pie slices in OutcomeSplit order.
var OutcomeLabels = []string{"Выжил", "Умер"}

// Placeholder series. Neither is derived from a model.
var (
	complicationSeries = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	causeOfDeathSeries = []float64{15, 30, 45, 60, 75, 90, 100}
)

type BarChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type PieChart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

func bar(labels []string, values []float64) BarChart {
	return BarChart{
		Labels: append([]string(nil), labels...),
		Values: append([]float64(nil), values...),
	}
}
