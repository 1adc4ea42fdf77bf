package gazetteer

// kenyanCounties lists each county with the ward, suburb and town names that
// identify it in listing text. Order is significant: the first county whose
// names match wins.
var kenyanCounties = []County{
	{Name: "Mombasa", Locations: []string{
		"Mombasa", "Mvita", "Saba Saba", "Majengo", "Changamwe", "Jomvu", "Kisauni", "Likoni",
		"Nyali", "Bamburi", "Kongowea", "Tudor", "Mtwapa", "Shanzu", "Frere Town", "Mkomani",
		"Kizingo", "Tononoka", "Magongo", "Mikindani",
	}},
	{Name: "Kwale", Locations: []string{
		"Kwale", "Kinango", "Lunga Lunga", "Msambweni", "Ukunda", "Diani", "Mazeras",
		"Shimoni", "Tiwi", "Matuga", "Gombato", "Ng'ombeni", "Mkongani", "Ramisi",
	}},
	{Name: "Kilifi", Locations: []string{
		"Kilifi", "Ganze", "Kaloleni", "Mtwapa", "Magarini", "Malindi", "Rabai", "Watamu",
		"Mariakani", "Kaloleni Town", "Vipingo", "Mavueni", "Gongoni", "Bamba", "Chasimba",
		"Tezo",
	}},
	{Name: "Tana River", Locations: []string{
		"Hola", "Bura", "Garsen", "Madogo", "Banga", "Minjila", "Ngao", "Kipini",
	}},
	{Name: "Lamu", Locations: []string{
		"Lamu", "Faza", "Mpeketoni", "Witu", "Mokowe", "Hindi", "Siyu",
	}},
	{Name: "Taita Taveta", Locations: []string{
		"Voi", "Mwatate", "Taveta", "Wundanyi", "Maungu", "Bura Station", "Mghange", "Tsavo",
		"Mackinnon Road",
	}},
	{Name: "Garissa", Locations: []string{
		"Garissa", "Dadaab", "Fafi", "Hulugho", "Ijara", "Modogashe", "Balambala", "Masalani",
		"Bura East", "Shant-Abak", "Nanighi",
	}},
	{Name: "Wajir", Locations: []string{
		"Wajir", "Eldas", "Tarbaj", "Bute", "Habaswein", "Griftu", "Buna", "Diff", "Wajir-Bor",
		"Gurard",
	}},
	{Name: "Mandera", Locations: []string{
		"Mandera", "Banissa", "Lafey", "Rhamu", "Elwak", "Takaba", "Mandera East", "Kutulo",
		"Fino",
	}},
	{Name: "Marsabit", Locations: []string{
		"Marsabit", "Laisamis", "Moyale", "North Horr", "Sololo", "Kalacha", "Illeret",
		"Dukana",
	}},
	{Name: "Isiolo", Locations: []string{
		"Isiolo", "Merti", "Garbatulla", "Oldonyiro", "Kinna", "Sericho",
	}},
	{Name: "Meru", Locations: []string{
		"Meru", "Timau", "Maua", "Laare", "Nkubu", "Mitunguu", "Muriri", "Kianjai", "Githongo",
		"Igoji", "Kanyakine", "Mikinduri", "Gatimbi",
	}},
	{Name: "Tharaka Nithi", Locations: []string{
		"Chuka", "Marimanti", "Chogoria", "Maara", "Chiakariga", "Muthambi", "Kathwana",
		"Magutuni", "Kibirichia", "Karingani", "Gatunga",
	}},
	{Name: "Embu", Locations: []string{
		"Embu", "Siakago", "Kiritiri", "Runyenjes", "Manyatta", "Kithimu", "Mwea", "Ishianga",
	}},
	{Name: "Kitui", Locations: []string{
		"Kitui", "Kakeani", "Mwingi", "Mutomo", "Kyuso", "Migwani", "Mutitu", "Katulani",
		"Kisasi", "Nzambani", "Ikutha",
	}},
	{Name: "Machakos", Locations: []string{
		"Machakos", "Kamulu", "Joska", "Malaa", "Mavoko", "Muthwani", "Kathiani", "Mitaboni",
		"Mlolongo", "Masinga", "Ekalakala", "Tala", "Matungulu", "Athi River", "Kinanie",
		"DayStar Area", "Lukenya", "Syokimau", "Mwala", "Masii", "Kithimani", "Matuu",
		"Kangundo", "Kivaa", "Yatta",
	}},
	{Name: "Makueni", Locations: []string{
		"Wote", "Kilala", "Kibwezi", "Mtito Andei", "Sultan Hamud", "Emali", "Makindu",
		"Kikima", "Kalawa", "Kasikeu", "Mukuyuni", "Mbitini", "Nguu/Masumba", "Mukaa",
		"Kathonzweni", "Nzaui/Kilili/Kalamba", "Kiima Kiu/Kalanzoni", "Kikumbulyu North",
		"Kilungu",
	}},
	{Name: "Nyandarua", Locations: []string{
		"Ol Kalou", "Engineer", "Kipipiri", "Ndaragwa", "Ol Joro Orok", "Mairo-Inya",
		"Nyahururu", "Kinangop", "Mirangine", "Rurii", "Magumu", "Leshau Pondo", "Gatimu",
		"Murungaru", "NjabiniKiburu", "Karau", "Wanjohi", "Shamata", "Charagita", "Githabai",
		"Nyakio", "Weru", "Kiriita", "Gathanji",
	}},
	{Name: "Nyeri", Locations: []string{
		"Nyeri", "Kieni", "Gakawa", "Gatarakwa", "Endarasha", "Mwiyogo", "Mugunda", "Mathira",
		"Magutu", "Naro Moru", "Mweiga", "Karatina", "Mukurweini", "Othaya", "Wamagana",
		"Ruringu", "Tetu", "Kiganjo", "Chinga",
	}},
	{Name: "Kirinyaga", Locations: []string{
		"Kerugoya", "Kutus", "Kianyaga", "Baricho", "Kandongu", "Ngurubani", "Wanguru",
		"Sagana", "Kagio", "Kiamaciri", "Nyangati", "Murinduko", "Kiine", "Baragwi", "Mutithi",
		"Mutira", "Inoi", "Gathigiriri", "Kariti", "Njukiini", "Mukure", "Wamumu",
	}},
	{Name: "Murang’a", Locations: []string{
		"Murang’a", "Gatanga", "Kahuro", "Kandara", "Kangema", "Kigumo", "Kenol", "Kiria-ini",
		"Maragua", "Makuyu", "Gacharage", "Kimorori/Wempa", "Kambiti", "Kamahuha",
		"Kakuzi/Mitubiri", "Nginda", "Gitugi", "Kagundu-Ini", "Mugumo-Ini", "Township G",
		"Ichagaki", "Rwathia", "Mbiri", "Muruka", "Mugoiri", "Ithanga",
	}},
	{Name: "Kiambu", Locations: []string{
		"Lari", "Kinale", "Nyanduma", "Lari/Kirenga", "Kiambu", "Kamwangi", "Gatundu",
		"Ndarugu", "Githunguri", "Juja", "Witethie", "Kabete", "Kiambaa", "Karuri", "Ndenderu",
		"Thindigua", "Ruaka", "Kikuyu", "Limuru", "Ruiru", "Kimbo", "Kwa Kairu", "Thika",
		"Gachie", "Banana", "Tigoni", "Ndumberi", "Kinoo", "Wangige",
	}},
	{Name: "Turkana", Locations: []string{
		"Lodwar", "Lorugum", "Lokori", "Lokitaung", "Kakuma", "Lokichar", "Kainuk", "Kalokol",
		"Kerio", "Kanamkemer",
	}},
	{Name: "West Pokot", Locations: []string{
		"Kapenguria", "Sigor", "Kacheliba", "Makutano", "Chepareria", "Ortum", "Kapsowar",
	}},
	{Name: "Samburu", Locations: []string{
		"Maralal", "Wamba", "Baragoi", "Archer’s Post", "Suguta Marmar", "Loruko",
	}},
	{Name: "Trans Nzoia", Locations: []string{
		"Kitale", "Cherangany", "Endebess", "Kiminini", "Kwanza", "Saboti", "Kapsara",
		"Sitatunga", "Bidii",
	}},
	{Name: "Uasin Gishu", Locations: []string{
		"Eldoret", "Ainabkoi", "Kapseret", "Kesses", "Moiben", "Soy", "Moi’s Bridge", "Turbo",
		"Ziwa", "Kaptagat", "Chepkoilel",
	}},
	{Name: "Elgeyo Marakwet", Locations: []string{
		"Iten", "Chepkorio", "Kapsowar", "Kaptarakwa", "Cheptongei", "Kapsabet", "Kamariny",
	}},
	{Name: "Nandi", Locations: []string{
		"Kapsabet", "Kobujoi", "Chemelil", "Kabiyet", "Nandi Hills", "Tindiret", "Mosoriot",
		"Kaiboi", "Kapkangani", "Ol'Lessos",
	}},
	{Name: "Baringo", Locations: []string{
		"Kabarnet", "Kipsaraman", "Marigat", "Eldama Ravine", "Mogotio", "Chemolingot",
		"Kabartonjo", "Barwessa", "Churo/Amaya", "Ravine",
	}},
	{Name: "Laikipia", Locations: []string{
		"Laikipia West", "Thome", "Mutara", "Ndurumo", "Sipili", "Sosian", "Lonyiek",
		"Laikipia Central", "Ngobit", "Nyambogishi", "Wiyumiririe", "Tigithi", "Laikipia East",
		"Muramati", "Segera", "Umande", "Nturukuma", "Rumuruti", "Nanyuki", "Doldol",
		"Nyahururu", "Rumuruti Town", "Kinamba", "Lamuria", "Laikipia North",
		"Githiga (Laikipia)",
	}},
	{Name: "Nakuru", Locations: []string{
		"Nakuru", "Kuresoi North", "Kamara", "Dundori", "Gilgil", "Elementaita", "Eburru",
		"Mau Summit", "Keringet", "Molo", "Turi", "Elburgon", "Naivasha", "Mai Mahiu", "Njoro",
		"Rongai", "Subukia", "Salgaa", "Mau Narok", "Bahati", "Lanet",
	}},
	{Name: "Narok", Locations: []string{
		"Narok", "Ololulunga", "Lemelepo", "Emurua Dikirr", "Kilgoris", "Suswa",
		"Nairegie Enkare", "Mulot",
	}},
	{Name: "Kajiado", Locations: []string{
		"Kajiado", "Isinya", "Ngong", "Ol Keri", "Kiserian", "Loitokitok", "Mashuru",
		"Kitengela", "Namanga", "Ongata Rongai", "Magadi", "Oloolaimutia", "Bissil",
	}},
	{Name: "Kericho", Locations: []string{
		"Kericho", "Sosiot", "Litein", "Kipkelion", "Fort Ternan", "Sigowet", "Londiani",
		"Chepseon", "Kapsuser",
	}},
	{Name: "Bomet", Locations: []string{
		"Bomet", "Longisa", "Sigor", "Mogogosiek", "Sotik", "Chebole", "Silibwet", "Kaplong",
	}},
	{Name: "Kakamega", Locations: []string{
		"Kakamega", "Butere", "Shinyalu", "Malava", "Ikolomani", "Khwisero", "Lugari",
		"Lukuyani", "Matete", "Mumias", "Mutungu", "Navakholo", "Shikoti", "Lumakanda",
		"Matungu",
	}},
	{Name: "Vihiga", Locations: []string{
		"Vihiga", "Emuhaya", "Hamisi", "Luanda", "Sabatia", "Mbale", "Chavakali", "Serem",
		"Kaimosi",
	}},
	{Name: "Bungoma", Locations: []string{
		"Bungoma", "Bumula", "Kabuchai", "Kimilili", "Kapsokwony", "Sirisia", "Tongaren",
		"Webuye", "Matete", "Chwele", "Kanduyi", "Naitiri",
	}},
	{Name: "Busia", Locations: []string{
		"Busia", "Port Victoria", "Butula", "Funyula", "Nambale", "Amagoro", "Malaba",
		"Amukura", "Budalangi", "Matayos",
	}},
	{Name: "Siaya", Locations: []string{
		"Siaya", "Bondo", "Yala", "Aram", "Ukwala", "Ugunja", "Nyilima", "Rarieda", "Ng’iya",
	}},
	{Name: "Kisumu", Locations: []string{
		"Kisumu", "Seme", "Ratta", "Kolunje", "East Seme", "Kajulu", "Ojola", "Muhoroni",
		"Pap Onditi", "Central Nyakach", "Awasi", "Kombewa", "Maseno", "Ahero", "Katito",
		"Chemelil",
	}},
	{Name: "Homa Bay", Locations: []string{
		"Homa Bay", "Kabondo", "Kendu Bay", "Oyugis", "Mbita", "Ndhiwa", "Rangwe", "Sindo",
		"Suba", "Rusinga",
	}},
	{Name: "Migori", Locations: []string{
		"Migori", "Awendo", "Kegonga", "Kehancha", "Mabera", "Ntimaru", "Rongo", "Suna",
		"Uriri", "Isebania", "Macalder", "Kuria",
	}},
	{Name: "Kisii", Locations: []string{
		"Kisii", "Kitutu Chache South", "Bogusero", "Nyamache", "Bonchari", "Riana",
		"Kenyenya", "Ogembo", "Marani", "Masaba", "Nyamarambe", "Suneka", "Gesusu", "Keroka",
	}},
	{Name: "Nyamira", Locations: []string{
		"Nyamira", "Borabu", "Manga", "Keroka", "Ekerenyo", "Nyansiongo", "Ikonge",
	}},
	{Name: "Nairobi", Locations: []string{
		"Langata", "Ngei Estate", "Deliverance", "Dagoretti", "Waithaka", "Uthiru", "Kabiria",
		"Ruthimitu", "Mutuini", "Ngando", "Market Dagoretti", "Satelitte", "Dagoretti Corner",
		"Jamhuri", "Woodley Estate", "Jamhuri Estate", "Nairobi", "Kariobangi",
		"Kariobangi South", "Kawangware", "Kilimani", "Ng’ando", "Riruta", "Kayole",
		"Komarock", "Mihango", "Utawala", "Dandora", "Imara Daima", "Kwa Njenga", "Umoja",
		"Mowlem", "Kamukunji", "Eastleigh", "Kasarani", "Githurai", "Kahawa", "Kibera",
		"Laini Saba", "Lang’ata", "Karen", "Makadara", "Viwandani", "Mathare", "Huruma",
		"Roysambu", "Zimmerman", "Kahawa West", "Ruaraka", "Baba Dogo", "Starehe",
		"Nairobi Central", "Pangani", "Westlands", "Parklands", "Kitisuru", "Kangemi",
		"South C", "Lavington", "Kileleshwa", "Donholm", "Embakasi", "Pipeline", "Buruburu",
		"London", "Section 58", "Piave Gardens", "Upperhill", "Milimani",
	}},
}

// populationDensity2019 holds persons per square kilometre from the 2019
// Kenya Population and Housing Census, keyed by census county label.
var populationDensity2019 = []densityEntry{
	{County: "MOMBASA", Density: 5495},
	{County: "KWALE", Density: 105},
	{County: "KILIFI", Density: 116},
	{County: "TANA RIVER", Density: 8},
	{County: "LAMU", Density: 23},
	{County: "TAITA TAVETA", Density: 20},
	{County: "GARISSA", Density: 19},
	{County: "WAJIR", Density: 14},
	{County: "MANDERA", Density: 33},
	{County: "MARSABIT", Density: 6},
	{County: "ISIOLO", Density: 11},
	{County: "MERU", Density: 220},
	{County: "THARAKA NITHI", Density: 153},
	{County: "EMBU", Density: 216},
	{County: "KITUI", Density: 37},
	{County: "MACHAKOS", Density: 236},
	{County: "MAKUENI", Density: 121},
	{County: "NYANDARUA", Density: 194},
	{County: "NYERI", Density: 228},
	{County: "KIRINYAGA", Density: 413},
	{County: "MURANG’A", Density: 419},
	{County: "KIAMBU", Density: 952},
	{County: "TURKANA", Density: 14},
	{County: "WEST POKOT", Density: 68},
	{County: "SAMBURU", Density: 15},
	{County: "TRANS NZOIA", Density: 397},
	{County: "UASIN GISHU", Density: 342},
	{County: "ELGEYO MARAKWET", Density: 150},
	{County: "NANDI", Density: 311},
	{County: "BARINGO", Density: 61},
	{County: "LAIKIPIA", Density: 55},
	{County: "NAKURU", Density: 288},
	{County: "NAROK", Density: 65},
	{County: "KAJIADO", Density: 51},
	{County: "KERICHO", Density: 370},
	{County: "BOMET", Density: 349},
	{County: "KAKAMEGA", Density: 619},
	{County: "VIHIGA", Density: 1047},
	{County: "BUNGOMA", Density: 552},
	{County: "BUSIA", Density: 526},
	{County: "SIAYA", Density: 393},
	{County: "KISUMU", Density: 554},
	{County: "HOMA BAY", Density: 359},
	{County: "MIGORI", Density: 427},
	{County: "KISII", Density: 957},
	{County: "NYAMIRA", Density: 675},
	{County: "NAIROBI CITY", Density: 6247},
}
