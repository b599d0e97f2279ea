// internal/domain/models/seed.go
package models

// DefaultDeck returns the seed slide collection. It is written to the store
// on first run, by the editor's reset action, and by the integrity guard's
// auto-repair. Callers get a fresh copy each time; mutating the result never
// affects later calls.
func DefaultDeck() []Slide {
	return []Slide{
		{
			Type:     SlideIntro,
			Title:    "2026 LinkedIn 經營攻略",
			Subtitle: "履歷被看見！透過 LinkedIn 打造你的數位莊園",
			Content: []ContentItem{
				TextItem("思維重塑：為什麼你不需要投履歷"),
				TextItem("門面優化：決策者視角 — 黃金六秒關鍵"),
				TextItem("人脈佈局：主動出擊、善用弱連結"),
				TextItem("內功心法：自我投資、長期佈局、有效社交"),
			},
			IconName: "Target",
		},
		{
			Type:   SlideAgenda,
			Module: "課程導航",
			Title:  "Agenda",
			Content: []ContentItem{
				{ID: "01", Title: "思維重塑 (Mindset Shift)", Desc: "紅海 vs 藍海，為什麼 99% 的人都在做白工？"},
				{ID: "02", Title: "門面優化 (Profile Optimization)", Desc: "決策者視角：如何通過黃金六秒的考驗？"},
				{ID: "03", Title: "人脈佈局 (Networking Strategy)", Desc: "破解 80% 隱藏市場：校友、弱連結與主動出擊。"},
				{ID: "04", Title: "內功心法 (The Inner Game)", Desc: "頂尖人才的社交貨幣、自我投資、OMO線上+線下連結。"},
			},
		},
		{
			Type:     SlideConcept,
			Module:   "模組一：思維重塑",
			Title:    "為什麼你需要 LinkedIn？",
			Question: "Q: 你認為 LinkedIn 和 104/人力銀行最大的差別是什麼？",
			Answer:   "104 是「比價」的紅海 (靜態)；LinkedIn 是「價值談判」的藍海 (動態)。",
			Points: []Point{
				{Title: "莊園理論", Desc: "傳統求職是打獵 (餓了才去狩獵)；LinkedIn 是經營莊園 (系統性的培育、灌溉、繁衍.... 永續耕耘豐富的資源！"},
				{Title: "PR99原則", Desc: "99%的認為它是靜態履歷；頂尖的Top1將把它視為24小時曝光的舞台/自我品牌。"},
				{Title: "隱藏市場", Desc: "80% 的好職缺未公開，是透過「人脈」、「被(獵頭)搜尋」成交的。"},
			},
		},
		{
			Type:   SlideTrend,
			Module: "模組一：思維重塑",
			Title:  "2026 三大關鍵趨勢",
			Content: []ContentItem{
				{IconName: "Video", Title: "圖片、影音優先", Desc: "演算法與眼球都愛視覺化的真實感，一定要圖文並茂（影片更加分）。"},
				{IconName: "HeartHandshake", Title: "真實性", Desc: "不要只寫 Job Description，要寫你的掙扎、失敗與成長故事。"},
				{IconName: "Bot", Title: "AI是你的職涯副駕駛", Desc: "善用各式AI收集素材，提升質量，但是一定要有個人觀點，空泛的廢文會被降權。"},
			},
		},
		{
			Type:     SlideAction,
			Module:   "模組二：黃金檔案優化",
			Title:    "決策者視角：黃金六秒法則",
			Question: "Q: 當我打開你的 Profile，我只花 6 秒決定是否聯繫。我看哪裡？",
			Answer:   "Headline(技能/關鍵字)、產業/職能經歷(相關性)、照片（專業/信任感）。",
			ActionItem: &ActionItem{
				Title:   "Headline 優化公式",
				Code:    "[職能角色] + [具體成果] + [專業領域]",
				Example: "❌ Senior Engineer\n✅ Senior Backend Dev | Helping FinTech Scale to 1M Users | Python & Go Expert",
			},
		},
		{
			Type:     SlideDeepDive,
			Module:   "模組二：黃金檔案優化",
			Title:    "關於我 (About) 的寫作策略",
			Subtitle: "針對受眾的痛點出發",
			Content: []ContentItem{
				TextItem("不要寫：我是誰，我做了什麼"),
				TextItem("要寫：我能解決誰的痛苦"),
				TextItem("技巧：埋入 JD (Job Description) 關鍵字以利 SEO"),
				TextItem("結構：Hook (鉤子) → Story (職涯故事) → Achievement (量化數據) → CTA (互動性)"),
			},
		},
		{
			Type:     SlideStrategy,
			Module:   "模組三：人脈與求職",
			Title:    "主動出擊的連結策略",
			Question: "Q: 申請工作前，除了等待，你還能做什麼？",
			Answer:   "主動出擊、找出有效連結甚至是產業前輩、HR人員。",
			Points: []Point{
				{Title: "客製化邀請內容", Desc: "不發送空白邀請：說明「你是誰」+「為何連結」＋「我欣賞你的觀點」。"},
				{Title: "朋友的朋友還是你的朋友", Desc: "利用地區、學歷、證照、社群，找出在目標公司的學長姐，這是最容易的切入點。"},
				{Title: "勇敢邀約面談 (Coffee Chat)", Desc: "不求職缺，只求指點。問：「行業面臨挑戰？」、「轉職可能會遇到什麼門檻」。"},
			},
		},
		{
			Type:     SlideAdvanced,
			Module:   "模組四：內功心法",
			Title:    "社交貨幣 | 人脈存摺",
			Subtitle: "如何不寫(長)文章，也能提高檔案曝光？",
			Content: []ContentItem{
				TextItem("留言矩陣：每天 15 分鐘，去同領域專家的文章下留「高價值觀點」。"),
				TextItem("成就他人：轉發或讚美他人的成就，是獲取好感的最快捷徑。"),
				TextItem("弱連結：神奇的轉職機會，可能來自「多年只見一次面」、「僅在LinkedIn互動過」的朋友。"),
				TextItem("提供(情緒)價值：升官、轉職、下午茶、下車文....通通給他愛心刷一排！"),
			},
		},
		{
			Type:     SlideStrategy,
			Module:   "模組四：內功心法",
			Title:    "頂尖人才的自我修煉",
			Question: "Q: 如何確保持續輸出高品質的內容？",
			Answer:   "線上影響力，源自於線下的「飽讀詩書」與「高品質輸入」",
			Points: []Point{
				{
					Title: "極致的自我投資 (Input)",
					Desc:  "「打開你的 iPhone/iPad 耗電分析, 時間都花在哪裡？。」\n分配時間給吸收相關領域的新知與提升技能。你的輸出品質，決定了你的身價。",
				},
				{
					Title: "走出去 (Output)",
					Desc:  "LinkedIn 是放大器，不是製造機。\n多參加實體活動與論壇，面對面淬煉出「有效社交」，再將這些連結帶回線上經營。",
				},
			},
		},
		{
			Type:   SlideChecklist,
			Module: "立即行動",
			Title:  "打造你的LinkedIn數位莊園",
			Quote:  "每天多比別人走一步，看似不起眼的足跡，將會不斷累積為成功的機率。",
			Checklist: []string{
				"檔案建檢：Headline 套用公式、照片專業化、About用彙整寫法",
				"固定發文：發表活動心得、考照成就、職場金句、人生格言",
				"社交投資：每天 15 分鐘、去留言、去按讚、去轉發、去建立新連結",
				"時間分配：關注產業新知、少滑短影音、多用LinkedIn",
				"人脈連結：每月參加一場活動、鎖定目標交換名片、強迫自己要有收穫！",
			},
		},
		{
			Type:           SlideResource,
			Module:         "Keep In Touch",
			Title:          "現在就建立連結！",
			ProfileLink:    "https://www.linkedin.com/in/robin-hsu-2b59a9a5/",
			MentorshipLink: "https://dada-fly.com/tw/mentors/robinhsu",
			QRCodeImage:    "https://raw.githubusercontent.com/robinaudi/linkedin-strategy/main/Xnip2025-12-10_11-39-59.jpg",
			Articles: []Article{
				{
					Title:    "『年紀越大，機會越多！』",
					Subtitle: "這是我最近在一場聚會上，聽到最有感觸的一段話。主辦方「台達電總經理」表示年紀愈大，應該....",
					Link:     "https://www.linkedin.com/feed/update/urn:li:activity:7401944907365740544/",
					Image:    "https://media.licdn.com/dms/image/v2/D5622AQHXHi0xk5FNrA/feedshare-shrink_2048_1536/B56Zrj9qpNK8Aw-/0/1764761186174",
				},
				{
					Title:    "『讓人辭職的不是公司，而是主管。』 by 納德拉 (微軟執行長)",
					Subtitle: "面試經典題：「什麼樣的公司會吸引你？」『團隊氛圍』、『重視溝通』、『鼓勵成長』.....",
					Link:     "https://www.linkedin.com/feed/update/urn:li:activity:7205025752990326784/",
					Image:    "https://media.licdn.com/dms/image/v2/D5622AQE6LEla9FtPhA/feedshare-shrink_800/feedshare-shrink_800/0/1712811060952",
				},
				{
					Title:    "『你知道嗎？只要你比其他主管健康，你就贏一半了！』",
					Subtitle: "同事在得知某主管因病告假後，脫口說了這句話。",
					Link:     "https://www.linkedin.com/feed/update/urn:li:activity:7184354551397847040/",
					Image:    "https://media.licdn.com/dms/image/v2/D5622AQFtRowONjHokw/feedshare-shrink_800/feedshare-shrink_800/0/1719184243670",
				},
			},
		},
	}
}
