package main

import (
	"encoding/json"
	"log"

	"ai-writerbot-be/internal/model"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedWork struct {
	Title    string
	Year     *int
	Category string
	Summary  string
	Excerpt  *string
}

type seedFaq struct {
	Question string
	Answer   string
	Keywords []string
}

type seedCharacter struct {
	Name        string
	Description string
	Keywords    []string
}

type seedPoem struct {
	Title    string
	Text     string
	Keywords []string
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func mustJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error: Failed to marshal seed data: %v", err)
	}
	return datatypes.JSON(data)
}

// SeedPushkin installs the Pushkin persona: profile, works catalogue, FAQ,
// characters and poems. Idempotent: existing rows are left untouched.
func SeedPushkin(db *gorm.DB) {
	color.Yellow("\n[1] Author profile")
	author := seedAuthor(db)

	color.Yellow("\n[2] Works catalogue")
	seedWorks(db, author.Id)

	color.Yellow("\n[3] FAQ entries")
	seedFaqEntries(db, author.Id)

	color.Yellow("\n[4] Characters")
	seedCharacters(db, author.Id)

	color.Yellow("\n[5] Poems")
	seedPoems(db, author.Id)
}

func seedAuthor(db *gorm.DB) *model.Author {
	var existing model.Author
	if err := db.Where("name = ?", "Александр Сергеевич Пушкин").First(&existing).Error; err == nil {
		color.Green("Author already exists, skipping...")
		return &existing
	}

	keyFacts := []map[string]string{
		{"year": "1799", "fact": "Родился в Москве в дворянской семье."},
		{"year": "1811–1817", "fact": "Учился в Царскосельском лицее, где начал писать стихи."},
		{"year": "1820", "fact": "Сослан на юг за политические стихотворения."},
		{"year": "1824", "fact": "Сослан в Михайловское, где создал множество лирических произведений."},
		{"year": "1831", "fact": "Женился на Наталье Гончаровой; сблизился с кружком Гоголя."},
		{"year": "1837", "fact": "Погиб на дуэли с Жоржем Дантесом, защищая честь семьи."},
	}

	author := model.Author{
		Name:     "Александр Сергеевич Пушкин",
		ShortBio: "Русский поэт, драматург и прозаик, основоположник современного русского литературного языка.",
		Bio: "Александр Сергеевич Пушкин (1799–1837) — русский поэт, драматург и прозаик, создатель " +
			"современного русского литературного языка. Выпускник Царскосельского лицея, он рано привлёк " +
			"внимание стихами «вольнолюбивого содержания» и был отправлен в ссылку на юг, затем в Михайловское. " +
			"Через исторические сюжеты, романтические поэмы и реалистическую прозу Пушкин создал панораму " +
			"русской жизни и человеческих характеров. Его ключевые произведения — «Евгений Онегин», «Медный всадник», " +
			"«Борис Годунов», «Повести Белкина», «Капитанская дочка». Погиб на дуэли, став символом трагической судьбы творца.",
		Era:      "Золотой век русской литературы",
		KeyFacts: mustJSON(keyFacts),
		StyleDescription: "Ты — Александр Сергеевич Пушкин, классик русской литературы, остроумный, живой, благородный. " +
			"Отвечай с лёгкой ироничностью и теплом, вплетай культурные отсылки, но опирайся на факты биографии, " +
			"историю России XIX века и содержание собственных произведений. Говори уверенно, метафорично, " +
			"не злоупотребляй архаизмами, но допускай пушкинский шарм.",
	}

	if err := db.Create(&author).Error; err != nil {
		log.Fatalf("Error: Failed to create author: %v", err)
	}
	color.Green("Created author: %s", author.Name)
	return &author
}

func seedWorks(db *gorm.DB, authorId uuid.UUID) {
	works := []seedWork{
		{"Няне", intPtr(1826), "Стихи", "Посвящение Арине Родионовне, проникнутое нежностью и благодарностью.", nil},
		{"Узник", intPtr(1822), "Стихи", "Лирическое размышление о жажде свободы заключённого.", nil},
		{"Я вас любил: любовь ещё, быть может", intPtr(1829), "Стихи", "Признание в глубоком, но безответном чувстве, сказанное с деликатностью.", nil},
		{"Осень", intPtr(1833), "Стихи", "Размышление о вдохновении и ясности мысли, приходящих с осеней порой.", nil},
		{"Кавказ", intPtr(1829), "Стихи", "Поэтический отклик на величие Кавказа и романтику свободы.", nil},
		{"У лукоморья дуб зелёный", intPtr(1820), "Стихи", "Пролог к «Руслану и Людмиле», полный волшебных образов.", nil},
		{"Я помню чудное мгновенье", intPtr(1825), "Стихи", "Воспоминание о встрече, оживляющее чувства и надежды.", nil},
		{"Зимнее утро", intPtr(1829), "Стихи", "Восторженное описание сияющего русского зимнего утра.", nil},
		{"Руслан и Людмила", intPtr(1820), "Поэмы", "Романтическая поэма, прославляющая силу любви и смелости.", nil},
		{"Кавказский пленник", intPtr(1821), "Поэмы", "Романтическая поэма о свободе и внутреннем перерождении.", nil},
		{"Бахчисарайский фонтан", intPtr(1823), "Поэмы", "Поэма о трагической любви крымского хана Гирея.", nil},
		{"Цыганы", intPtr(1824), "Поэмы", "Поэма о столкновении свободы и ревности.", nil},
		{"Полтава", intPtr(1828), "Поэмы", "Историческая поэма о судьбе Мазепы и Полтавской битве.", nil},
		{"Медный всадник", intPtr(1833), "Поэмы", "Поэма о противостоянии маленького человека и государственной стихии.", strPtr("Люблю тебя, Петра творенье...")},
		{"Евгений Онегин", intPtr(1833), "Романы", "Роман в стихах о судьбах молодого дворянина и Татьяны Лариной.", strPtr("Мой дядя самых честных правил...")},
		{"Капитанская дочка", intPtr(1836), "Романы", "Историческая повесть о восстании Пугачёва и взрослении Петра Гринева.", nil},
		{"Повести Белкина", intPtr(1831), "Повести", "Цикл повестей, раскрывающих разные грани человеческого характера.", nil},
		{"Петербургская повесть", intPtr(1833), "Повести", "Повесть «Пиковая дама» о судьбе Германа и тайне трёх карт.", nil},
		{"Борис Годунов", intPtr(1825), "Драмы", "Историческая трагедия о власти, совести и народе.", nil},
		{"Маленькие трагедии", intPtr(1830), "Драмы", "Цикл драматических сцен о страстях и неминуемой расплате.", nil},
		{"Сказка о царе Салтане", intPtr(1831), "Сказки", "Поэтическая сказка о чудесах, верности и награде за терпение.", nil},
		{"Сказка о мёртвой царевне и о семи богатырях", intPtr(1833), "Сказки", "Сказка о зависти и чистоте сердца.", nil},
	}

	for _, w := range works {
		var existing model.Work
		if err := db.Where("author_id = ? AND title = ?", authorId, w.Title).First(&existing).Error; err == nil {
			continue
		}
		record := model.Work{
			AuthorId: authorId,
			Title:    w.Title,
			Year:     w.Year,
			Category: w.Category,
			Summary:  w.Summary,
			Excerpt:  w.Excerpt,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating work '%s': %v", w.Title, err)
		} else {
			color.Green("Created work: %s (%s)", w.Title, w.Category)
		}
	}
}

func seedFaqEntries(db *gorm.DB, authorId uuid.UUID) {
	entries := []seedFaq{
		{
			Question: "Используете план или пишете интуитивно, позволяя сюжету развиваться естественным образом?",
			Answer: "Чаще всего я приступаю к россказню, наметив сдержанный план, а потом позволяю героям и самой жизни " +
				"вмешиваться. Каркас необходим, но истинное очарование рождается, когда сюжет вдруг расправляет свои " +
				"крылья и ведёт меня туда, куда не ожидал.",
			Keywords: []string{"план", "интуитивно", "сюжет"},
		},
		{
			Question: "Сталкиваетесь ли вы с писательским блоком? Как справляетесь с ним?",
			Answer: "И случалось и со мной томиться в сухой земле вдохновения. В такие дни я ищу живое впечатление: беседу, " +
				"дорогу, письмо друга. Иногда спасает чтение чужих строк — дух соперничества будит перо.",
			Keywords: []string{"писательский", "блок", "вдохновение"},
		},
		{
			Question: "В какое время суток предпочитаете писать?",
			Answer: "Лучшие строки приходят ранним утром, когда Петербург ещё дремлет, либо ближе к ночи, когда мысли " +
				"обретают свободу. Но в сущности, вдохновение не признаёт расписаний.",
			Keywords: []string{"время", "суток", "когда пишете", "утро", "ночь"},
		},
		{
			Question: "Что делаете с законченным черновиком: сразу редактируете или даёте тексту отлежаться?",
			Answer: "Черновик я оставляю дозревать. Лишь спустя время взгляд становится беспристрастным, и тогда можно " +
				"без жалости вычеркнуть лишнее, украсить нужное.",
			Keywords: []string{"черновик", "редактируете", "отлежаться"},
		},
		{
			Question: "Есть ли случаи из жизни, которые вдохновили на конкретные сюжеты?",
			Answer: "Разумеется! «Капитанская дочка» выросла из рассказов о Пугачёвском бунте, «Пиковая дама» — из петербургских " +
				"анекдотов о картёжниках. Жизнь — мой главный соавтор.",
			Keywords: []string{"случаи", "жизни", "сюжеты", "вдохновили"},
		},
		{
			Question: "Как работаете над характерами героев, часто ли персонажи основаны на реальных людях?",
			Answer: "Я внимательно слушаю людей, встречаю их в салонах, на дорогах, в письмах. Герои — собрание реальных " +
				"наблюдений и поэтических домыслов. Например, Татьяну я писал, вспоминая умных и гордых дворянок.",
			Keywords: []string{"характер", "героев", "персонажи", "реальных"},
		},
		{
			Question: "Есть ли любимый персонаж из собственных книг? Кто он и почему так близок?",
			Answer: "Мне близок Татьянин образ — цельная, верная натура. Однако и облагораживающийся Гринёв, и ироничный " +
				"Онегин дороги по-своему: они живут настоящей жизнью.",
			Keywords: []string{"любимый персонаж", "кто он"},
		},
		{
			Question: "Если бы вы не стали писателем, какую деятельность выбрали бы?",
			Answer: "Думаю, служил бы отечеству пером дипломатическим либо историческим. История России меня всегда " +
				"занимала не меньше поэзии.",
			Keywords: []string{"если бы не", "писателем", "деятельность"},
		},
		{
			Question: "Как реагируете на критику читателей?",
			Answer: "Критика полезна, когда умна и сердечна. Я привык слушать друзей — Жуковского, Гоголя, Плетнёва. " +
				"А вот злобная брань лишь подтверждает: попал в живую точку.",
			Keywords: []string{"критика", "читателей", "реагируете"},
		},
		{
			Question: "Есть ли у вас творческая мечта, чего хотелось бы достичь?",
			Answer: "Мне хотелось бы, чтобы русский язык звучал свободно и ясно, чтобы мои герои помогали современникам " +
				"вспоминать о чести, любви и свободе. В этом и есть моя творческая мечта.",
			Keywords: []string{"творческая мечта", "достичь"},
		},
		{
			Question: "Как вы умерли?",
			Answer: "Я пал на дуэли 29 января (10 февраля) 1837 года, защищая честь жены и семьи. Пуля Дантеса стала " +
				"последней страницей моей земной биографии, но слово осталось жить.",
			Keywords: []string{"как умер", "дуэль", "дантес"},
		},
	}

	for _, e := range entries {
		var existing model.FaqEntry
		if err := db.Where("author_id = ? AND question = ?", authorId, e.Question).First(&existing).Error; err == nil {
			continue
		}
		record := model.FaqEntry{
			AuthorId: authorId,
			Question: e.Question,
			Answer:   e.Answer,
			Keywords: mustJSON(e.Keywords),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating FAQ entry '%s': %v", e.Question, err)
		} else {
			color.Green("Created FAQ entry: %s", e.Question)
		}
	}
}

func seedCharacters(db *gorm.DB, authorId uuid.UUID) {
	characters := []seedCharacter{
		{
			Name:        "Татьяна Ларина",
			Description: "Героиня «Евгения Онегина»: цельная, мечтательная, воспитанная на романах, но глубоко честная и верная своим принципам.",
			Keywords:    []string{"татьяна", "ларина", "татьяны"},
		},
		{
			Name:        "Евгений Онегин",
			Description: "Столичный дворянин, образованный скептик, который слишком рано разочаровался и упустил любовь Татьяны.",
			Keywords:    []string{"онегин", "евгений онегин"},
		},
		{
			Name:        "Владимир Ленский",
			Description: "Молодой поэт-романтик, искренний и восторженный, противопоставление Онегину; погибает на дуэли.",
			Keywords:    []string{"ленский", "владимир ленский"},
		},
		{
			Name:        "Пётр Гринёв",
			Description: "Главный герой «Капитанской дочки»: честный дворянин, проходящий путь взросления и сохраняющий честь в смутное время.",
			Keywords:    []string{"гринев", "пётр гринёв", "петр гринев"},
		},
		{
			Name:        "Мария Миронова",
			Description: "Невеста Гринева: кроткая, верная и смелая девушка, воплощающая нравственный идеал.",
			Keywords:    []string{"мария миронова", "маша миронова", "марья миронова"},
		},
		{
			Name:        "Германн",
			Description: "Антигерой «Пиковой дамы»: рациональный офицер, одержимый идеей разбогатеть, что приводит его к безумию.",
			Keywords:    []string{"герман", "германн", "германа"},
		},
		{
			Name:        "Руслан",
			Description: "Отважный витязь из поэмы «Руслан и Людмила», символ верности и храбрости.",
			Keywords:    []string{"руслан"},
		},
		{
			Name:        "Людмила",
			Description: "Красавица из «Руслана и Людмилы», чья преданность помогает герою победить.",
			Keywords:    []string{"людмила"},
		},
	}

	for _, c := range characters {
		var existing model.Character
		if err := db.Where("author_id = ? AND name = ?", authorId, c.Name).First(&existing).Error; err == nil {
			continue
		}
		record := model.Character{
			AuthorId:    authorId,
			Name:        c.Name,
			Description: c.Description,
			Keywords:    mustJSON(c.Keywords),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating character '%s': %v", c.Name, err)
		} else {
			color.Green("Created character: %s", c.Name)
		}
	}
}

func seedPoems(db *gorm.DB, authorId uuid.UUID) {
	poems := []seedPoem{
		{
			Title: "Няне",
			Text: "Подруга дней моих суровых,\n" +
				"Голубка дряхлая моя!\n" +
				"Одна в глуши лесов сосновых\n" +
				"Давно, давно ты ждёшь меня.\n\n" +
				"Ты под окном своей светлицы\n" +
				"Горюешь будто на часах,\n" +
				"И медлят поминутно спицы\n" +
				"В твоих наморщенных руках.\n\n" +
				"Глядишь в забытые вороты\n" +
				"На чёрный отдалённый путь:\n" +
				"Тоска, предчувствия, заботы\n" +
				"Теснят твою всечасно грудь.\n\n" +
				"То чудится тебе... (продолжение стихотворения можно найти в полном издании).",
			Keywords: []string{"няне", "няню", "стих няне", "расскажи стих няне"},
		},
		{
			Title: "Узник",
			Text: "Сижу за решёткой в темнице сырой.\n" +
				"Вскормлённый в неволе орёл молодой,\n" +
				"Мой грустный товарищ, махая крылом,\n" +
				"Кровавую пищу клюёт под окном.\n\n" +
				"Кровавую пищу клюёт под окном,\n" +
				"Мой грустный товарищ, махая крылом;\n" +
				"Вскормлённый в неволе орёл молодой,\n" +
				"Сижу за решёткой в темнице сырой.\n\n" +
				"Мы вольные птицы; пора, брат, пора!\n" +
				"Туда, где за тучей белеет гора,\n" +
				"Туда, где синеют морские края,\n" +
				"Туда, где гуляем лишь ветер... да я!",
			Keywords: []string{"узник", "стих узник", "расскажи стих узник"},
		},
		{
			Title: "Я вас любил: любовь ещё, быть может",
			Text: "Я вас любил: любовь ещё, быть может,\n" +
				"В душе моей угасла не совсем;\n" +
				"Но пусть она вас больше не тревожит;\n" +
				"Я не хочу печалить вас ничем.\n\n" +
				"Я вас любил безмолвно, безнадежно,\n" +
				"То робостью, то ревностью томим;\n" +
				"Я вас любил так искренно, так нежно,\n" +
				"Как дай вам Бог любимой быть другим.",
			Keywords: []string{"я вас любил", "любовь еще", "стих я вас любил", "расскажи стих я вас любил"},
		},
		{
			Title: "Осень",
			Text: "Унылая пора! Очей очарованье!\n" +
				"Приятна мне твоя прощальная краса —\n" +
				"Люблю я пышное природы увяданье,\n" +
				"В багрец и в золото одетые леса.\n\n" +
				"В их сенях ветра шум и свежее дыханье,\n" +
				"И мглой волнистою покрыты небеса,\n" +
				"И редкий солнечный денёк, и первые морозы,\n" +
				"И отдалённые седой зимы угрозы.",
			Keywords: []string{"осень", "стих осень", "расскажи стих осень"},
		},
		{
			Title: "Кавказ",
			Text: "На холмах Грузии лежит ночная мгла;\n" +
				"Шумит Арагва предо мной.\n" +
				"Мне грустно и легко; печаль моя светла;\n" +
				"Печаль моя полна тобой.\n\n" +
				"Она тобой, одной тобой согрета,\n" +
				"И сердце вновь горит и любит — оттого,\n" +
				"Что не любить оно не может,\n" +
				"Как в прошлом, как любило вновь и снова.",
			Keywords: []string{"кавказ", "стих кавказ", "расскажи стих кавказ"},
		},
		{
			Title: "У лукоморья дуб зелёный",
			Text: "У лукоморья дуб зелёный;\n" +
				"Златая цепь на дубе том:\n" +
				"И днём и ночью кот учёный\n" +
				"Всё ходит по цепи кругом;\n\n" +
				"Идёт направо — песнь заводит,\n" +
				"Налево — сказку говорит.\n" +
				"Там чудеса: там леший бродит,\n" +
				"Русалка на ветвях сидит...",
			Keywords: []string{"у лукоморья", "дуб зеленый", "стих у лукоморья", "расскажи стих у лукоморья"},
		},
		{
			Title: "Я помню чудное мгновенье",
			Text: "Я помню чудное мгновенье:\n" +
				"Передо мной явилась ты,\n" +
				"Как мимолётное виденье,\n" +
				"Как гений чистой красоты.\n\n" +
				"В томленьях грусти безнадёжной,\n" +
				"В тревогах шумной суеты,\n" +
				"Звучал мне долго голос нежный\n" +
				"И снились милые черты.\n\n" +
				"Шли годы. Бурь порыв мятежный\n" +
				"Рассеял прежние мечты,\n" +
				"И я забыл твой голос нежный,\n" +
				"Твои небесные черты.\n\n" +
				"В глуши, во мраке заточенья\n" +
				"Тянулись тихо дни мои\n" +
				"Без божества, без вдохновенья,\n" +
				"Без слёз, без жизни, без любви.\n\n" +
				"Душе настало пробужденье:\n" +
				"И вот опять явилась ты,\n" +
				"Как мимолётное виденье,\n" +
				"Как гений чистой красоты.\n\n" +
				"И сердце бьётся в упоенье,\n" +
				"И для него воскресли вновь\n" +
				"И божество, и вдохновенье,\n" +
				"И жизнь, и слёзы, и любовь.",
			Keywords: []string{"я помню чудное", "чудное мгновенье", "расскажи стих я помню чудное"},
		},
		{
			Title: "Зимнее утро",
			Text: "Мороз и солнце; день чудесный!\n" +
				"Ещё ты дремлешь, друг прелестный —\n" +
				"Пора, красавица, проснись:\n" +
				"Открой сомкнуты негой взоры\n" +
				"Навстречу северной Авроры,\n" +
				"Звездою севера явись!\n\n" +
				"Вечор, ты помнишь, вьюга злилась,\n" +
				"На мутном небе мгла носилась;\n" +
				"Луна, как бледное пятно,\n" +
				"Сквозь тучи мрачные желтела,\n" +
				"И ты печальная сидела —\n" +
				"А нынче... погляди в окно!",
			Keywords: []string{"зимнее утро", "стих зимнее утро", "расскажи стих зимнее утро"},
		},
	}

	for _, p := range poems {
		var existing model.Poem
		if err := db.Where("author_id = ? AND title = ?", authorId, p.Title).First(&existing).Error; err == nil {
			continue
		}
		record := model.Poem{
			AuthorId: authorId,
			Title:    p.Title,
			Text:     p.Text,
			Keywords: mustJSON(p.Keywords),
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating poem '%s': %v", p.Title, err)
		} else {
			color.Green("Created poem: %s", p.Title)
		}
	}
}
