package zodiac

// seedSigns holds the twelve canonical signs served by the reference API.
// Copy is in Turkish, matching the site content.
var seedSigns = []ZodiacSign{
	{
		Name:          "Koç",
		Symbol:        "♈",
		Element:       "Ateş",
		Planet:        "Mars",
		DateRange:     "21 Mart - 19 Nisan",
		Traits:        "Enerjik, cesur, rekabetçi",
		Strengths:     "Liderlik, cesaret, heyecan",
		Weaknesses:    "Sabırsızlık, agresiflik, düşünmeden hareket etme",
		Description:   "Koç burcu, zodyak'ın ilk burcudur ve ilkbaharın başlangıcını temsil eder. Yönetici gezegeni Mars olan Koç burcu, ateş elementine aittir. Koç burçları genellikle enerjik, cesaretli ve maceracıdır. Liderlik vasıfları güçlüdür ve yeni girişimlere başlamakta ustadırlar. Ancak, sabırsız olabilir ve düşünmeden hareket edebilirler.",
		Compatibility: "Aslan, Yay, İkizler, Kova",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/e/ee/Aries.svg",
	},
	{
		Name:          "Boğa",
		Symbol:        "♉",
		Element:       "Toprak",
		Planet:        "Venüs",
		DateRange:     "20 Nisan - 20 Mayıs",
		Traits:        "Kararlı, güvenilir, duyusal",
		Strengths:     "Sabır, pratiklik, güvenilirlik",
		Weaknesses:    "İnatçılık, sahiplenmek, değişime direnç",
		Description:   "Boğa burcu, toprak elementine ait olup Venüs tarafından yönetilir. Boğa burçları genellikle kararlı, güvenilir ve pratiktir. Konfor, güvenlik ve istikrarı değerlendirirler. Doğal olarak estetik bir anlayışa sahiptirler ve güzel şeylerden keyif alırlar. Ancak, inatçı olabilirler ve değişime direnç gösterebilirler.",
		Compatibility: "Başak, Oğlak, Yengeç, Balık",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/9/99/Taurus.svg",
	},
	{
		Name:          "İkizler",
		Symbol:        "♊",
		Element:       "Hava",
		Planet:        "Merkür",
		DateRange:     "21 Mayıs - 20 Haziran",
		Traits:        "Meraklı, uyarlanabilir, sosyal",
		Strengths:     "İletişim, zeka, uyarlanabilirlik",
		Weaknesses:    "Kararsızlık, yüzeysellik, dikkat dağınıklığı",
		Description:   "İkizler burcu, hava elementine aittir ve Merkür tarafından yönetilir. İkizler burçları genellikle meraklı, sosyal ve uyarlanabilirdir. Mükemmel iletişimcilerdir ve yeni fikirler ve deneyimler için her zaman açıktırlar. Ancak, kararsız olabilirler ve odaklanmakta zorlanabilirler.",
		Compatibility: "Terazi, Kova, Koç, Aslan",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/b/b2/Gemini.svg",
	},
	{
		Name:          "Yengeç",
		Symbol:        "♋",
		Element:       "Su",
		Planet:        "Ay",
		DateRange:     "21 Haziran - 22 Temmuz",
		Traits:        "Duygusal, koruyucu, sezgisel",
		Strengths:     "Şefkat, sadakat, duyarlılık",
		Weaknesses:    "Değişken ruh hali, aşırı duygusallık, manipülatif olabilme",
		Description:   "Yengeç burcu, su elementine aittir ve Ay tarafından yönetilir. Yengeç burçları genellikle duygusal, sezgisel ve koruyucudur. Aile ve ev onlar için çok önemlidir. Genellikle empatiktirler ve başkalarının duygularını anlama konusunda doğal bir yeteneğe sahiptirler. Ancak, değişken ruh halleri olabilir ve aşırı duyarlı olabilirler.",
		Compatibility: "Akrep, Balık, Boğa, Başak",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/1/10/Cancer.svg",
	},
	{
		Name:          "Aslan",
		Symbol:        "♌",
		Element:       "Ateş",
		Planet:        "Güneş",
		DateRange:     "23 Temmuz - 22 Ağustos",
		Traits:        "Gururlu, cömert, yaratıcı",
		Strengths:     "Güçlü irade, karizma, liderlik",
		Weaknesses:    "Kibir, baskınlık, ihtişam düşkünlüğü",
		Description:   "Aslan burcu, ateş elementine aittir ve Güneş tarafından yönetilir. Aslan burçları genellikle özgüvenli, cömert ve yaratıcıdır. Doğal liderlerdir ve dikkat çekmeyi severler. Tutkuludurlar ve hayatlarını büyük bir coşkuyla yaşarlar. Ancak, kibir gösterebilirler ve baskın olabilirler.",
		Compatibility: "Koç, Yay, İkizler, Terazi",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/9/99/Leo.svg",
	},
	{
		Name:          "Başak",
		Symbol:        "♍",
		Element:       "Toprak",
		Planet:        "Merkür",
		DateRange:     "23 Ağustos - 22 Eylül",
		Traits:        "Analitik, pratik, mükemmeliyetçi",
		Strengths:     "Titizlik, zeka, problem çözme",
		Weaknesses:    "Eleştirellik, aşırı endişe, dış dünyaya kapalılık",
		Description:   "Başak burcu, toprak elementine aittir ve Merkür tarafından yönetilir. Başak burçları genellikle analitik, pratik ve düzenlidir. Detaylara büyük önem verirler ve problem çözmede ustadırlar. Yardımsever ve sadıktırlar. Ancak, aşırı eleştirel olabilirler ve fazla endişelenme eğilimindedirler.",
		Compatibility: "Boğa, Oğlak, Yengeç, Akrep",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/0/0c/Virgo.svg",
	},
	{
		Name:          "Terazi",
		Symbol:        "♎",
		Element:       "Hava",
		Planet:        "Venüs",
		DateRange:     "23 Eylül - 22 Ekim",
		Traits:        "Diplomatik, adil, sosyal",
		Strengths:     "Diplomatik yetenek, uyum, denge",
		Weaknesses:    "Kararsızlık, yüzeysellik, çatışmadan kaçınma",
		Description:   "Terazi burcu, hava elementine aittir ve Venüs tarafından yönetilir. Terazi burçları genellikle diplomatik, adil ve sosyaldir. Denge ve uyuma değer verirler. Güzellik, sanat ve estetiğe doğal bir çekimleri vardır. Ancak, kararsız olabilirler ve çatışmadan kaçınabilirler.",
		Compatibility: "İkizler, Kova, Aslan, Yay",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/f/f7/Libra.svg",
	},
	{
		Name:          "Akrep",
		Symbol:        "♏",
		Element:       "Su",
		Planet:        "Plüton",
		DateRange:     "23 Ekim - 21 Kasım",
		Traits:        "Yoğun, tutkulu, kararlı",
		Strengths:     "Kararlılık, cesaret, sezgisellik",
		Weaknesses:    "Kıskançlık, obsesiflik, kontrolcülük",
		Description:   "Akrep burcu, su elementine aittir ve Plüton tarafından yönetilir. Akrep burçları genellikle yoğun, tutkulu ve kararlıdır. Büyük bir iç güce ve sezgisel anlayışa sahiptirler. Sadık ve koruyucudurlar. Ancak, kıskanç ve kontrolcü olabilirler ve intikamcı bir tarafları vardır.",
		Compatibility: "Yengeç, Balık, Başak, Oğlak",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/e/ea/Scorpio.svg",
	},
	{
		Name:          "Yay",
		Symbol:        "♐",
		Element:       "Ateş",
		Planet:        "Jüpiter",
		DateRange:     "22 Kasım - 21 Aralık",
		Traits:        "İyimser, özgürlük sever, felsefi",
		Strengths:     "İyimserlik, dürüstlük, macera ruhu",
		Weaknesses:    "Taktısızlık, sabırsızlık, bağlanamama",
		Description:   "Yay burcu, ateş elementine aittir ve Jüpiter tarafından yönetilir. Yay burçları genellikle iyimser, dürüst ve maceraperesttir. Özgürlüğü ve yeni deneyimleri severler. Felsefeye, eğitime ve büyük düşünmeye doğal bir eğilimleri vardır. Ancak, taktlar olabilirler ve bağlanmakta zorlanabilirler.",
		Compatibility: "Koç, Aslan, İkizler, Terazi",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/8/80/Sagittarius.svg",
	},
	{
		Name:          "Oğlak",
		Symbol:        "♑",
		Element:       "Toprak",
		Planet:        "Satürn",
		DateRange:     "22 Aralık - 19 Ocak",
		Traits:        "Disiplinli, sorumlu, geleneksel",
		Strengths:     "Disiplin, sorumluluk, pratiklik",
		Weaknesses:    "Katılık, pesimizm, aşırı iş odaklılık",
		Description:   "Oğlak burcu, toprak elementine aittir ve Satürn tarafından yönetilir. Oğlak burçları genellikle disiplinli, sorumlu ve hırslıdır. Pratiktirler ve hedeflerine ulaşmak için sabırla çalışırlar. Geleneklere ve otoriteye saygı gösterirler. Ancak, katı ve pesimist olabilirler ve işlerine fazla odaklanabilirler.",
		Compatibility: "Boğa, Başak, Akrep, Balık",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/7/76/Capricorn.svg",
	},
	{
		Name:          "Kova",
		Symbol:        "♒",
		Element:       "Hava",
		Planet:        "Uranüs",
		DateRange:     "20 Ocak - 18 Şubat",
		Traits:        "Yenilikçi, bağımsız, hümanist",
		Strengths:     "Orijinallik, bağımsızlık, ileri görüşlülük",
		Weaknesses:    "Duygusal kopukluk, asi ruh, çelişki",
		Description:   "Kova burcu, hava elementine aittir ve Uranüs tarafından yönetilir. Kova burçları genellikle yenilikçi, ilerici ve bağımsızdır. Orijinal fikirler üretirler ve geleneksel olmayan yaklaşımlara değer verirler. İnsancıldırlar ve toplumsal konulara ilgi duyarlar. Ancak, duygusal olarak kopuk olabilirler ve fazla asi olabilirler.",
		Compatibility: "İkizler, Terazi, Koç, Yay",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/2/24/Aquarius.svg",
	},
	{
		Name:          "Balık",
		Symbol:        "♓",
		Element:       "Su",
		Planet:        "Neptün",
		DateRange:     "19 Şubat - 20 Mart",
		Traits:        "Duyarlı, hayalci, şefkatli",
		Strengths:     "Yaratıcılık, empati, sezgisellik",
		Weaknesses:    "Kurban psikolojisi, kaçış, belirsizlik",
		Description:   "Balık burcu, su elementine aittir ve Neptün tarafından yönetilir. Balık burçları genellikle empatik, hayalci ve sezgiseldir. Yaratıcı bir ruha sahiptirler ve duygusal derinlikleri vardır. Şefkatlidirler ve başkalarına yardım etmekten keyif alırlar. Ancak, gerçeklikten kaçma eğiliminde olabilirler ve kolayca kurban rolüne bürünebilirler.",
		Compatibility: "Yengeç, Akrep, Boğa, Oğlak",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/9/95/Pisces.svg",
	},
}
