package tariff

// moto builds the voucher map for a motorcycle-grid row. Light-vehicle
// counts follow the grid's standard ratios: 2x the standard count for
// LIGHT_VEHICLE_STANDARD and 3x for LIGHT_VEHICLE_EXPRESS.
func moto(standard, express, urgent int) map[Formula]int {
	return map[Formula]int{
		FormulaStandard:             standard,
		FormulaExpress:              express,
		FormulaUrgent:               urgent,
		FormulaLightVehicleStandard: standard * 2,
		FormulaLightVehicleExpress:  standard * 3,
	}
}

// DefaultGrid returns the embedded Île-de-France rate grid. It is the
// bootstrap data for the seeder and the fallback source when the service
// runs without a database. Counts are vouchers, not currency.
func DefaultGrid() []CityRate {
	return []CityRate{
		{PostalCode: "94140", CityName: "Alfortville", Vouchers: moto(6, 10, 14)},
		{PostalCode: "92160", CityName: "Antony", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94110", CityName: "Arcueil", Vouchers: moto(4, 7, 10)},
		{PostalCode: "95100", CityName: "Argenteuil", Vouchers: moto(8, 12, 16)},
		{PostalCode: "91290", CityName: "Arpajon", Vouchers: moto(15, 20, 25)},
		{PostalCode: "92600", CityName: "Asnières sur Seine", Vouchers: moto(4, 7, 10)},
		{PostalCode: "91200", CityName: "Athis Mons", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93300", CityName: "Aubervilliers", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93600", CityName: "Aulnay sous Bois", Vouchers: moto(12, 17, 22)},
		{PostalCode: "92220", CityName: "Bagneux", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93170", CityName: "Bagnolet", Vouchers: moto(4, 7, 10)},
		{PostalCode: "95870", CityName: "Bezons", Vouchers: moto(8, 12, 16)},
		{PostalCode: "91570", CityName: "Bièvres", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93150", CityName: "Le Blanc-Mesnil", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93000", CityName: "Bobigny", Vouchers: moto(6, 10, 14)},
		{PostalCode: "92270", CityName: "Bois Colombes", Vouchers: moto(4, 7, 10)},
		{PostalCode: "78390", CityName: "Bois d'Arcy", Vouchers: moto(14, 19, 24)},
		{PostalCode: "91070", CityName: "Bondoufle", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93140", CityName: "Bondy", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94380", CityName: "Bonneuil sur Marne", Vouchers: moto(12, 17, 22)},
		{PostalCode: "78380", CityName: "Bougival", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92100", CityName: "Boulogne Billancourt", Vouchers: moto(3, 6, 9)},
		{PostalCode: "92340", CityName: "Bourg la Reine", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93350", CityName: "Le Bourget", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77170", CityName: "Brie Comte Robert", Vouchers: moto(20, 25, 30)},
		{PostalCode: "94360", CityName: "Bry sur Marne", Vouchers: moto(8, 12, 16)},
		{PostalCode: "78530", CityName: "Buc", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77600", CityName: "Bussy Saint Georges", Vouchers: moto(14, 19, 24)},
		{PostalCode: "94230", CityName: "Cachan", Vouchers: moto(4, 7, 10)},
		{PostalCode: "78420", CityName: "Carrières sur Seine", Vouchers: moto(8, 12, 16)},
		{PostalCode: "95800", CityName: "Cergy", Vouchers: moto(15, 20, 25)},
		{PostalCode: "94500", CityName: "Champigny sur Marne", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77420", CityName: "Champs sur Marne", Vouchers: moto(14, 19, 24)},
		{PostalCode: "94220", CityName: "Charenton le Pont", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92290", CityName: "Châtenay Malabry", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92320", CityName: "Châtillon", Vouchers: moto(4, 7, 10)},
		{PostalCode: "78400", CityName: "Chatou", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92370", CityName: "Chaville", Vouchers: moto(7, 11, 15)},
		{PostalCode: "77500", CityName: "Chelles", Vouchers: moto(14, 19, 24)},
		{PostalCode: "94430", CityName: "Chennevières sur Marne", Vouchers: moto(12, 17, 22)},
		{PostalCode: "78150", CityName: "Le Chesnay-Rocquencourt", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77700", CityName: "Chessy", Vouchers: moto(20, 25, 30)},
		{PostalCode: "94550", CityName: "Chevilly Larue", Vouchers: moto(8, 12, 16)},
		{PostalCode: "91380", CityName: "Chilly Mazarin", Vouchers: moto(12, 17, 22)},
		{PostalCode: "94600", CityName: "Choisy le Roi", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92140", CityName: "Clamart", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92110", CityName: "Clichy", Vouchers: moto(3, 6, 9)},
		{PostalCode: "93390", CityName: "Clichy sous Bois", Vouchers: moto(14, 19, 24)},
		{PostalCode: "92700", CityName: "Colombes", Vouchers: moto(4, 7, 10)},
		{PostalCode: "77380", CityName: "Combs la Ville", Vouchers: moto(18, 23, 28)},
		{PostalCode: "78700", CityName: "Conflans Ste Honorine", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93470", CityName: "Coubron", Vouchers: moto(14, 19, 24)},
		{PostalCode: "77120", CityName: "Coulommiers", Vouchers: moto(30, 35, 40)},
		{PostalCode: "92400", CityName: "Courbevoie", Vouchers: moto(3, 6, 9)},
		{PostalCode: "91080", CityName: "Courcouronnes", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93120", CityName: "La Courneuve", Vouchers: moto(6, 10, 14)},
		{PostalCode: "94000", CityName: "Créteil", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77183", CityName: "Croissy Beaubourg", Vouchers: moto(14, 19, 24)},
		{PostalCode: "92060", CityName: "La Défense", Vouchers: moto(3, 6, 9)},
		{PostalCode: "95170", CityName: "Deuil la Barre", Vouchers: moto(10, 15, 20)},
		{PostalCode: "95330", CityName: "Domont", Vouchers: moto(14, 19, 24)},
		{PostalCode: "93700", CityName: "Drancy", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93440", CityName: "Dugny", Vouchers: moto(8, 12, 16)},
		{PostalCode: "78990", CityName: "Elancourt", Vouchers: moto(14, 19, 24)},
		{PostalCode: "77184", CityName: "Emerainville", Vouchers: moto(14, 19, 24)},
		{PostalCode: "95880", CityName: "Enghien les Bains", Vouchers: moto(10, 15, 20)},
		{PostalCode: "93800", CityName: "Epinay sur Seine", Vouchers: moto(6, 10, 14)},
		{PostalCode: "91150", CityName: "Étampes", Vouchers: moto(25, 30, 35)},
		{PostalCode: "91000", CityName: "Evry", Vouchers: moto(15, 20, 25)},
		{PostalCode: "77300", CityName: "Fontainebleau", Vouchers: moto(30, 35, 40)},
		{PostalCode: "92260", CityName: "Fontenay aux Roses", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94120", CityName: "Fontenay sous Bois", Vouchers: moto(6, 10, 14)},
		{PostalCode: "78112", CityName: "Fourqueux", Vouchers: moto(10, 15, 20)},
		{PostalCode: "95130", CityName: "Franconville la Garenne", Vouchers: moto(10, 15, 20)},
		{PostalCode: "94260", CityName: "Fresnes", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93220", CityName: "Gagny", Vouchers: moto(12, 17, 22)},
		{PostalCode: "92380", CityName: "Garches", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92250", CityName: "La Garenne-Colombes", Vouchers: moto(4, 7, 10)},
		{PostalCode: "95140", CityName: "Garges les Gonesse", Vouchers: moto(10, 15, 20)},
		{PostalCode: "92230", CityName: "Gennevilliers", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94250", CityName: "Gentilly", Vouchers: moto(4, 7, 10)},
		{PostalCode: "91190", CityName: "Gif sur Yvette", Vouchers: moto(15, 20, 25)},
		{PostalCode: "91940", CityName: "Gometz le Châtel", Vouchers: moto(15, 20, 25)},
		{PostalCode: "95000", CityName: "Gonesse", Vouchers: moto(10, 15, 20)},
		{PostalCode: "93460", CityName: "Gournay sur Marne", Vouchers: moto(14, 19, 24)},
		{PostalCode: "95190", CityName: "Goussainville", Vouchers: moto(14, 19, 24)},
		{PostalCode: "78280", CityName: "Guyancourt", Vouchers: moto(14, 19, 24)},
		{PostalCode: "94240", CityName: "L'Haÿ les Roses", Vouchers: moto(6, 10, 14)},
		{PostalCode: "95220", CityName: "Herblay", Vouchers: moto(15, 20, 25)},
		{PostalCode: "78800", CityName: "Houilles", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93450", CityName: "L'Île Saint Denis", Vouchers: moto(6, 10, 14)},
		{PostalCode: "92130", CityName: "Issy les Moulineaux", Vouchers: moto(3, 6, 9)},
		{PostalCode: "94200", CityName: "Ivry sur Seine", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94340", CityName: "Joinville le Pont", Vouchers: moto(6, 10, 14)},
		{PostalCode: "78350", CityName: "Jouy en Josas", Vouchers: moto(8, 12, 16)},
		{PostalCode: "91260", CityName: "Juvisy sur Orge", Vouchers: moto(12, 17, 22)},
		{PostalCode: "94250", CityName: "Le Kremlin-Bicêtre", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94510", CityName: "La Queue-en-Brie", Vouchers: moto(14, 19, 24)},
		{PostalCode: "92300", CityName: "Levallois Perret", Vouchers: moto(3, 6, 9)},
		{PostalCode: "77127", CityName: "Lieusaint", Vouchers: moto(18, 23, 28)},
		{PostalCode: "93260", CityName: "Les Lilas", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94450", CityName: "Limeil Brevannes", Vouchers: moto(12, 17, 22)},
		{PostalCode: "91090", CityName: "Lisses", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93190", CityName: "Livry Gargan", Vouchers: moto(14, 19, 24)},
		{PostalCode: "77185", CityName: "Lognes", Vouchers: moto(14, 19, 24)},
		{PostalCode: "91160", CityName: "Longjumeau", Vouchers: moto(12, 17, 22)},
		{PostalCode: "78430", CityName: "Louveciennes", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94700", CityName: "Maisons Alfort", Vouchers: moto(6, 10, 14)},
		{PostalCode: "78600", CityName: "Maisons Laffite", Vouchers: moto(10, 15, 20)},
		{PostalCode: "92240", CityName: "Malakoff", Vouchers: moto(3, 6, 9)},
		{PostalCode: "78200", CityName: "Mantes la Jolie", Vouchers: moto(25, 30, 35)},
		{PostalCode: "78160", CityName: "Marly le Roi", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92430", CityName: "Marnes la Coquette", Vouchers: moto(7, 11, 15)},
		{PostalCode: "91300", CityName: "Massy", Vouchers: moto(12, 17, 22)},
		{PostalCode: "77100", CityName: "Meaux", Vouchers: moto(25, 30, 35)},
		{PostalCode: "77000", CityName: "Melun", Vouchers: moto(25, 30, 35)},
		{PostalCode: "92190", CityName: "Meudon", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92390", CityName: "Meudon La Forêt", Vouchers: moto(7, 11, 15)},
		{PostalCode: "78250", CityName: "Meulan en Yvelines", Vouchers: moto(20, 25, 30)},
		{PostalCode: "77290", CityName: "Mitry Mory", Vouchers: moto(14, 19, 24)},
		{PostalCode: "77550", CityName: "Moissy Cramayel", Vouchers: moto(18, 23, 28)},
		{PostalCode: "93370", CityName: "Monfermeil", Vouchers: moto(14, 19, 24)},
		{PostalCode: "78490", CityName: "Montfort l'Amaury", Vouchers: moto(20, 23, 27)},
		{PostalCode: "78180", CityName: "Montigny le Bretonneux", Vouchers: moto(14, 19, 24)},
		{PostalCode: "91310", CityName: "Montlhéry", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93100", CityName: "Montreuil sous Bois", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92120", CityName: "Montrouge", Vouchers: moto(3, 6, 9)},
		{PostalCode: "91420", CityName: "Morangis", Vouchers: moto(12, 17, 22)},
		{PostalCode: "78130", CityName: "Les Mureaux", Vouchers: moto(20, 25, 30)},
		{PostalCode: "92000", CityName: "Nanterre", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93360", CityName: "Neuilly Plaisance", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93330", CityName: "Neuilly sur Marne", Vouchers: moto(12, 17, 22)},
		{PostalCode: "92200", CityName: "Neuilly sur Seine", Vouchers: moto(3, 6, 9)},
		{PostalCode: "94130", CityName: "Nogent sur Marne", Vouchers: moto(6, 10, 14)},
		{PostalCode: "94370", CityName: "Noiseau", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93160", CityName: "Noisy le Grand", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93130", CityName: "Noisy le Sec", Vouchers: moto(6, 10, 14)},
		{PostalCode: "94310", CityName: "Orly", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94490", CityName: "Ormesson sur Marne", Vouchers: moto(12, 17, 22)},
		{PostalCode: "91400", CityName: "Orsay", Vouchers: moto(15, 20, 25)},
		{PostalCode: "91120", CityName: "Palaiseau", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93500", CityName: "Pantin", Vouchers: moto(4, 7, 10)},
		{PostalCode: "75000", CityName: "Paris", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75001", CityName: "Paris 01", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75002", CityName: "Paris 02", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75003", CityName: "Paris 03", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75004", CityName: "Paris 04", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75005", CityName: "Paris 05", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75006", CityName: "Paris 06", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75007", CityName: "Paris 07", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75008", CityName: "Paris 08", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75009", CityName: "Paris 09", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75010", CityName: "Paris 10", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75011", CityName: "Paris 11", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75012", CityName: "Paris 12", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75013", CityName: "Paris 13", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75014", CityName: "Paris 14", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75015", CityName: "Paris 15", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75016", CityName: "Paris 16", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75017", CityName: "Paris 17", Vouchers: moto(2, 4, 7)},
		{PostalCode: "75018", CityName: "Paris 18", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75019", CityName: "Paris 19", Vouchers: moto(3, 6, 9)},
		{PostalCode: "75020", CityName: "Paris 20", Vouchers: moto(3, 6, 9)},
		{PostalCode: "93320", CityName: "Les Pavillons-sous-Bois", Vouchers: moto(12, 17, 22)},
		{PostalCode: "94170", CityName: "Le Perreux-sur-Marne", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93380", CityName: "Pierrefitte sur Seine", Vouchers: moto(8, 12, 16)},
		{PostalCode: "78370", CityName: "Plaisir", Vouchers: moto(14, 19, 24)},
		{PostalCode: "92350", CityName: "Le Plessis-Robinson", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94420", CityName: "Le Plessis-Trévise", Vouchers: moto(14, 19, 24)},
		{PostalCode: "78300", CityName: "Poissy", Vouchers: moto(15, 20, 25)},
		{PostalCode: "95300", CityName: "Pontoise", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93310", CityName: "Le Pré-Saint-Gervais", Vouchers: moto(4, 7, 10)},
		{PostalCode: "92800", CityName: "Puteaux", Vouchers: moto(3, 6, 9)},
		{PostalCode: "93340", CityName: "Le Raincy", Vouchers: moto(12, 17, 22)},
		{PostalCode: "78120", CityName: "Rambouillet", Vouchers: moto(25, 30, 35)},
		{PostalCode: "95700", CityName: "Roissy en France", Vouchers: moto(14, 19, 24)},
		{PostalCode: "93230", CityName: "Romainville", Vouchers: moto(6, 10, 14)},
		{PostalCode: "93110", CityName: "Rosny sous Bois", Vouchers: moto(6, 10, 14)},
		{PostalCode: "92500", CityName: "Rueil Malmaison", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94150", CityName: "Rungis", Vouchers: moto(8, 12, 16)},
		{PostalCode: "91400", CityName: "Saclay", Vouchers: moto(15, 20, 25)},
		{PostalCode: "92210", CityName: "Saint Cloud", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93210", CityName: "Saint Denis La Plaine", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93200", CityName: "Saint Denis", Vouchers: moto(6, 10, 14)},
		{PostalCode: "78100", CityName: "Saint Germain en Laye", Vouchers: moto(10, 15, 20)},
		{PostalCode: "95210", CityName: "Saint Gratien", Vouchers: moto(10, 15, 20)},
		{PostalCode: "94160", CityName: "Saint Mandé", Vouchers: moto(4, 7, 10)},
		{PostalCode: "94210", CityName: "Saint Maur des Fossés", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94410", CityName: "Saint Maurice", Vouchers: moto(6, 10, 14)},
		{PostalCode: "95310", CityName: "Saint Ouen l'Aumône", Vouchers: moto(15, 20, 25)},
		{PostalCode: "93400", CityName: "Saint Ouen sur Seine", Vouchers: moto(4, 7, 10)},
		{PostalCode: "77400", CityName: "Saint Thibault des Vignes", Vouchers: moto(16, 21, 26)},
		{PostalCode: "95200", CityName: "Sarcelles", Vouchers: moto(10, 15, 20)},
		{PostalCode: "78500", CityName: "Sartrouville", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92330", CityName: "Sceaux", Vouchers: moto(8, 12, 16)},
		{PostalCode: "93270", CityName: "Sevran", Vouchers: moto(14, 19, 24)},
		{PostalCode: "92310", CityName: "Sèvres", Vouchers: moto(4, 7, 10)},
		{PostalCode: "93240", CityName: "Stains", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94370", CityName: "Sucy en Brie", Vouchers: moto(12, 17, 22)},
		{PostalCode: "92150", CityName: "Suresnes", Vouchers: moto(3, 6, 9)},
		{PostalCode: "94320", CityName: "Thiais", Vouchers: moto(8, 12, 16)},
		{PostalCode: "77200", CityName: "Torcy", Vouchers: moto(14, 19, 24)},
		{PostalCode: "78190", CityName: "Trappes", Vouchers: moto(14, 19, 24)},
		{PostalCode: "93290", CityName: "Tremblay en France", Vouchers: moto(14, 19, 24)},
		{PostalCode: "91940", CityName: "Les Ulis", Vouchers: moto(15, 20, 25)},
		{PostalCode: "94460", CityName: "Valenton", Vouchers: moto(12, 17, 22)},
		{PostalCode: "92170", CityName: "Vanves", Vouchers: moto(3, 6, 9)},
		{PostalCode: "92420", CityName: "Vaucresson", Vouchers: moto(7, 11, 15)},
		{PostalCode: "93410", CityName: "Vaujours", Vouchers: moto(14, 19, 24)},
		{PostalCode: "78140", CityName: "Vélizy Villacoublay", Vouchers: moto(8, 12, 16)},
		{PostalCode: "78000", CityName: "Versailles", Vouchers: moto(8, 12, 16)},
		{PostalCode: "78110", CityName: "Le Vésinet", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92410", CityName: "Ville d'Avray", Vouchers: moto(7, 11, 15)},
		{PostalCode: "94440", CityName: "Villecresnes", Vouchers: moto(14, 19, 24)},
		{PostalCode: "94800", CityName: "Villejuif", Vouchers: moto(6, 10, 14)},
		{PostalCode: "93250", CityName: "Villemomble", Vouchers: moto(8, 12, 16)},
		{PostalCode: "92390", CityName: "Villeneuve la Garenne", Vouchers: moto(6, 10, 14)},
		{PostalCode: "94190", CityName: "Villeneuve St Georges", Vouchers: moto(12, 17, 22)},
		{PostalCode: "93420", CityName: "Villepinte", Vouchers: moto(14, 19, 24)},
		{PostalCode: "93430", CityName: "Villetaneuse", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94350", CityName: "Villiers sur Marne", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94300", CityName: "Vincennes", Vouchers: moto(4, 7, 10)},
		{PostalCode: "78220", CityName: "Viroflay", Vouchers: moto(8, 12, 16)},
		{PostalCode: "94400", CityName: "Vitry sur Seine", Vouchers: moto(6, 10, 14)},
		{PostalCode: "78960", CityName: "Voisins le Bretonneux", Vouchers: moto(14, 19, 24)},
		{PostalCode: "91320", CityName: "Wissous", Vouchers: moto(10, 15, 20)},
	}
}
