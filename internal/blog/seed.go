package blog

// seedPosts are the starter articles for a fresh install.
var seedPosts = []BlogPost{
	{
		Title:    "Mars Retrosu ve Burçlara Etkileri",
		Slug:     "mars-retrosu-ve-burclara-etkileri",
		Content:  `<p>Mars gezegeninin retro döneminde burçların nasıl etkilendiğini ve bu dönemi en verimli şekilde nasıl geçirebileceğinizi anlattık.</p>
                  <h2>Mars Retrosu Nedir?</h2>
                  <p>Mars retrosu, Mars gezegeninin Dünya'dan bakıldığında geriye doğru hareket ediyormuş gibi göründüğü astronomik bir olaydır. Bu fiziksel bir geri hareket değil, optik bir yanılsamadır. Astrolojik açıdan, Mars retrosu enerjinin içe dönük bir şekilde yönlendirildiği, harekete geçmek yerine gözden geçirme ve yeniden değerlendirme zamanı olarak kabul edilir.</p>
                  <h2>Burçlara Etkileri</h2>
                  <h3>Ateş Burçları (Koç, Aslan, Yay)</h3>
                  <p>Ateş burçları için Mars retrosu oldukça zorlayıcı olabilir. Normalde ileri atılma, liderlik etme ve risk alma konusunda istekli olan bu burçlar, retro döneminde frustrasyon ve sabırsızlık yaşayabilirler. Bu süreçte enerjilerini içe dönük çalışmalara, kişisel projelere yönlendirmeleri daha faydalı olacaktır.</p>
                  <h3>Toprak Burçları (Boğa, Başak, Oğlak)</h3>
                  <p>Toprak burçları Mars retrosundan genellikle daha az etkilenir, ancak maddi konularda, iş hayatında ve fiziksel sağlıkta bazı aksaklıklar yaşayabilirler. Bu dönem, finansal planları gözden geçirmek ve sağlık rutinlerini iyileştirmek için ideal bir zamandır.</p>`,
		Excerpt:  "Mars gezegeninin retro döneminde burçların nasıl etkilendiğini ve bu dönemi en verimli şekilde nasıl geçirebileceğinizi anlattık.",
		ImageURL: "https://images.unsplash.com/photo-1534447677768-be436bb09401?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1471&q=80",
		Category: "Gezegenler",
		Author:   "Astro Uzmanı",
	},
	{
		Title:    "Dolunay Ritüelleri ve Enerjisini Kullanma",
		Slug:     "dolunay-rituelleri-ve-enerjisini-kullanma",
		Content:  `<p>Dolunay döneminde enerjinizi yükseltecek, hedeflerinize ulaşmanızı sağlayacak ritüeller ve meditasyon teknikleri.</p>
                  <h2>Dolunay Enerjisi</h2>
                  <p>Dolunay, Ay'ın döngüsünün en güçlü zamanıdır ve tamamlanma, hasat ve farkındalık enerjilerini temsil eder. Bu dönem, hedeflerinize ulaşmak, manifestasyon çalışmaları yapmak ve arınma ritüelleri gerçekleştirmek için mükemmel bir zamandır.</p>
                  <h2>Dolunay Ritüelleri</h2>
                  <h3>1. Ay Suyu Hazırlama</h3>
                  <p>Bir kase temiz suyu dolunay ışığının altına yerleştirin ve tüm gece boyunca orada bırakın. Bu "şarj olmuş" suyu çeşitli ritüellerde, bitkileri sulamak için veya evinizi temizlemek için kullanabilirsiniz.</p>
                  <h3>2. Şükran ve Niyet Listesi</h3>
                  <p>Dolunay zamanı, hem şükran duymak hem de artık hayatınızda istemediğiniz şeyleri serbest bırakmak için idealdir. Bir kağıda minnettar olduğunuz şeyleri yazın, ardından başka bir kağıda bırakmak istediğiniz alışkanlıkları, düşünceleri veya durumları yazın. İkinci kağıdı güvenli bir şekilde yakabilir veya gömebilirsiniz.</p>`,
		Excerpt:  "Dolunay döneminde enerjinizi yükseltecek, hedeflerinize ulaşmanızı sağlayacak ritüeller ve meditasyon teknikleri.",
		ImageURL: "https://images.unsplash.com/photo-1675461221513-bc94b2f3f8fa?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1470&q=80",
		Category: "Ay Döngüsü",
		Author:   "Luna Bilge",
	},
	{
		Title:    "Venüs'ün Doğum Haritanızdaki Yeri ve Aşk Hayatınız",
		Slug:     "venusun-dogum-haritanizdaki-yeri-ve-ask-hayatiniz",
		Content:  `<p>Doğum haritanızda Venüs'ün konumu aşk hayatınız, ilişki tarzınız ve çekim gücünüz hakkında ne söylüyor?</p>
                  <h2>Venüs'ün Astrolojideki Önemi</h2>
                  <p>Venüs, astrolojide aşk, güzellik, değerler ve zevk gezegeni olarak bilinir. Doğum haritanızda Venüs'ün bulunduğu burç ve ev, romantik ilişkilerdeki tercihlerinizi, neyi çekici bulduğunuzu ve ilişkilerde nasıl davrandığınızı etkiler.</p>
                  <h2>Burçlarda Venüs</h2>
                  <h3>Koç Burcunda Venüs</h3>
                  <p>Venüs'ü Koç'ta olanlar, aşkta tutkulu, spontane ve doğrudandır. Heyecan verici, enerjik partnerlere çekilirler ve ilişkilerinde liderlik etmeyi severler. Ancak bazen sabırsız olabilir ve uzun süreli bağlılıkta zorluk yaşayabilirler.</p>
                  <h3>Boğa Burcunda Venüs</h3>
                  <p>Venüs'ü Boğa'da olanlar, güvenilir, sadık ve duyusal ilişkiler ararlar. Fiziksel temas, konfor ve güvenlik onlar için önemlidir. Romantik jestleri, lüksü ve güzel yemekleri takdir ederler. Ancak bazen aşırı sahiplenici olabilirler.</p>`,
		Excerpt:  "Doğum haritanızda Venüs'ün konumu aşk hayatınız, ilişki tarzınız ve çekim gücünüz hakkında ne söylüyor?",
		ImageURL: "https://images.unsplash.com/photo-1614642264762-d0a3b8bf3700?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1470&q=80",
		Category: "İlişkiler",
		Author:   "Venüs Yıldız",
	},
}
