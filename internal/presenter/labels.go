package presenter

// Portuguese labels shared by the console and workbook outputs.
const (
	titleWeekday     = "1. Quais são os dias da semana com maior e menor volume de vendas?"
	titleHourly      = "2. Em quais horários do dia as vendas atingem o pico e quando são mais baixas?"
	titleMonthly     = "3. Como o faturamento varia ao longo dos meses?"
	titleProducts    = "4. Quais produtos são os mais vendidos e quais têm o maior faturamento total?"
	titleLowVolume   = "5. Existem produtos com venda muito baixa que talvez devam ser removidos do cardápio?"
	titlePriceVolume = "6. Como os valores dos produtos influenciam o volume de vendas?"
	titleStaffing    = "7. Em quais horários ou dias o café poderia precisar de mais funcionários no caixa?"
	titleTrends      = "8. Existem tendências semanais ou mensais?"

	chartWeekday     = "Volume e Faturamento por Dia da Semana"
	chartHourly      = "Volume e Faturamento por Hora do Dia"
	chartMonthly     = "Faturamento por Mês"
	chartProducts    = "Volume e Faturamento por Produto"
	chartPriceVolume = "Preço vs. Volume de Vendas"
	chartStaffing    = "Volume por Dia e Hora"
	chartTrends      = "Tendências de Faturamento"

	labelDay       = "Dia"
	labelHour      = "Hora do Dia"
	labelMonth     = "Mês-Ano"
	labelProduct   = "Produto"
	labelDate      = "Data"
	labelVolume    = "Volume"
	labelRevenue   = "Faturamento"
	labelMeanPrice = "Preço Médio"
	labelDaily     = "Diário"
	labelRolling   = "Média Móvel %d Dias"
	labelTotal     = "Faturamento Total (R$)"
)
