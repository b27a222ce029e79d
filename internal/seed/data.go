package seed

import "mimarfolio/internal/model"

var sampleProjects = []model.Project{
	{
		Title:       "Modern Villa Projesi",
		Description: "Doğa ile iç içe minimalist tasarım anlayışıyla tasarlanmış modern villa projesi. Sürdürülebilir malzemeler ve enerji verimli çözümler kullanılarak inşa edildi.",
		Location:    "İstanbul, Beykoz",
		Year:        "2024",
		Category:    "Konut",
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		IsFeatured:  true,
	},
	{
		Title:       "Kurumsal Ofis Binası",
		Description: "Sürdürülebilir mimarlık ilkeleri ve çevre dostu yaklaşımla tasarlanan çok katlı ofis kompleksi. Açık ofis planları ve ortak alanlar çalışanlar arası iş birliğini teşvik ediyor.",
		Location:    "İstanbul, Levent",
		Year:        "2023",
		Category:    "Ticari",
		Image:       "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		IsFeatured:  true,
	},
	{
		Title:       "Boutique Otel",
		Description: "Tarihi dokular ile modern konforu harmanlayan butik otel tasarımı. Eski yapının karakterini korurken çağdaş dokunuşlarla misafirlerine benzersiz bir deneyim sunuyor.",
		Location:    "Antalya, Kaleiçi",
		Year:        "2023",
		Category:    "Turizm",
		Image:       "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		IsFeatured:  true,
	},
	{
		Title:       "Kültür Merkezi",
		Description: "Şehrin merkezinde çok amaçlı bir kültür merkezi. Konser salonu, sergi alanları ve atölyeler içerir. Yerel malzemeler kullanılarak modern bir tasarım elde edildi.",
		Location:    "İzmir, Konak",
		Year:        "2022",
		Category:    "Kültürel",
		Image:       "https://images.unsplash.com/photo-1582711012124-a56cf82307a0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		IsFeatured:  false,
	},
	{
		Title:       "Loft Daire Renovasyonu",
		Description: "Eski bir endüstriyel binanın modern bir loft daireye dönüşümü. Açık plan yerleşimi ve endüstriyel detaylarla karakteristik bir yaşam alanı yaratıldı.",
		Location:    "İstanbul, Karaköy",
		Year:        "2022",
		Category:    "Renovasyon",
		Image:       "https://images.unsplash.com/photo-1574739782594-db4ead022697?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		IsFeatured:  false,
	},
}

var sampleTestimonials = []model.Testimonial{
	{
		Name:     "Ahmet Yılmaz",
		Title:    "Villa Sahibi",
		Content:  "Hayal ettiğimizden bile güzel bir ev ortaya çıktı. Her detayda özen ve profesyonellik vardı.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		IsActive: true,
	},
	{
		Name:     "Elif Demir",
		Title:    "Şirket Sahibi",
		Content:  "Ofisimiz artık çalışanlarımızın en sevdiği yer. Fonksiyonellik ve estetik mükemmel birleşmiş.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		IsActive: true,
	},
	{
		Name:     "Mehmet Kaya",
		Title:    "Otel İşletmecisi",
		Content:  "Misafirlerimizden sürekli övgü alıyoruz. Tasarım gerçekten fark yaratıyor.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80",
		IsActive: true,
	},
	{
		Name:     "Ayşe Öztürk",
		Title:    "Kültür Merkezi Yöneticisi",
		Content:  "İhtiyaçlarımızı tam olarak anlayıp, fonksiyonel ve estetik bir mimari tasarım sundular. İş birliğinden çok memnun kaldık.",
		Rating:   4,
		IsActive: true,
	},
}

var sampleServices = []model.Service{
	{
		Title:       "Mimari Tasarım",
		Description: "Konsept tasarımdan uygulama projelerine kadar kapsamlı mimari tasarım hizmeti sunuyoruz.",
		Icon:        "home",
		IsActive:    true,
	},
	{
		Title:       "İç Mekan Tasarımı",
		Description: "Fonksiyonel ve estetik iç mekan tasarımları ile yaşam ve çalışma alanlarınızı dönüştürüyoruz.",
		Icon:        "layout",
		IsActive:    true,
	},
	{
		Title:       "Renovasyon",
		Description: "Mevcut yapıların yenilenmesi ve dönüştürülmesi için yaratıcı çözümler üretiyoruz.",
		Icon:        "tool",
		IsActive:    true,
	},
	{
		Title:       "Peyzaj Tasarımı",
		Description: "Doğa ile uyumlu, sürdürülebilir ve estetik dış mekan tasarımları geliştiriyoruz.",
		Icon:        "trees",
		IsActive:    true,
	},
	{
		Title:       "Proje Yönetimi",
		Description: "Tasarım aşamasından inşaatın tamamlanmasına kadar proje yönetimi hizmeti sunuyoruz.",
		Icon:        "clipboard-list",
		IsActive:    true,
	},
}

var sampleTeamMembers = []model.TeamMember{
	{
		Name:     "Ali Yılmaz",
		Title:    "Kurucu & Baş Mimar",
		Bio:      "15 yılı aşkın deneyimiyle ulusal ve uluslararası projelere imza atmış, yenilikçi tasarım anlayışını sürdürülebilirlik ilkeleriyle birleştiren mimar.",
		Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&q=80",
		Email:    "ali@mimarportfolyo.com",
		Linkedin: "https://linkedin.com/in/aliyilmaz",
		IsActive: true,
	},
	{
		Name:     "Zeynep Demir",
		Title:    "Kıdemli İç Mimar",
		Bio:      "Fonksiyonelliği estetikle buluşturan tasarım anlayışıyla tanınan, 10 yıllık deneyime sahip uzman iç mimar.",
		Image:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&q=80",
		Email:    "zeynep@mimarportfolyo.com",
		Linkedin: "https://linkedin.com/in/zeynepdemir",
		IsActive: true,
	},
	{
		Name:     "Murat Kaya",
		Title:    "Mimar & Proje Yöneticisi",
		Bio:      "Karmaşık projeleri başarıyla yöneten, teknik uzmanlığı ve problem çözme becerisiyle tanınan deneyimli mimar.",
		Image:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&q=80",
		Email:    "murat@mimarportfolyo.com",
		Linkedin: "https://linkedin.com/in/muratkaya",
		IsActive: true,
	},
}
