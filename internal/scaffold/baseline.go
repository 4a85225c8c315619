package scaffold

import (
	"fmt"
	"strings"

	"lakenine-studio/internal/domain/entity"
)

// Static image URLs used by the baseline project so it renders without
// any placeholder resolution or network lookups.
var baselineImages = map[string]string{
	"logo":    "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=200&h=200&fit=crop&crop=center",
	"hero":    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=1200&h=600&fit=crop&crop=center",
	"about":   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=600&h=400&fit=crop&crop=center",
	"service": "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=300&h=200&fit=crop&crop=center",
	"office":  "https://images.unsplash.com/photo-1423666639041-f56000c27a9a?w=400&h=300&fit=crop&crop=center",
}

var baselineCopy = map[entity.BusinessDomain]struct {
	brand    string
	heroHead string
	heroSub  string
	services [3]string
}{
	entity.DomainGym: {
		"PeakFit Gym", "Transform Your Body, Transform Your Life",
		"State-of-the-art equipment, expert trainers, and a community that keeps you moving.",
		[3]string{"Personal Training", "Group Classes", "Nutrition Coaching"},
	},
	entity.DomainRestaurant: {
		"The Golden Fork", "A Taste Worth Remembering",
		"Seasonal ingredients, handcrafted dishes, and an atmosphere made for lingering.",
		[3]string{"Dine In", "Private Events", "Catering"},
	},
	entity.DomainTechnology: {
		"NovaStack", "Software That Moves You Forward",
		"We design, build, and scale digital products for ambitious teams.",
		[3]string{"Product Development", "Cloud Solutions", "Consulting"},
	},
	entity.DomainBusiness: {
		"Meridian Group", "Professional Solutions, Real Results",
		"A partner you can rely on for every stage of your business journey.",
		[3]string{"Strategy", "Operations", "Growth"},
	},
}

// BaselineProject is the complete fallback website served when the
// model output fails extraction or quality checks beyond repair. It is
// fully resolved: no image placeholders remain.
func BaselineProject(domain entity.BusinessDomain) entity.FileSet {
	c, ok := baselineCopy[domain]
	if !ok {
		c = baselineCopy[entity.DomainBusiness]
		if name := string(domain); name != "" {
			c.brand = strings.ToUpper(name[:1]) + name[1:] + " Studio"
		}
	}

	files := entity.FileSet{}
	files.Set("package.json", PackageJSON)
	files.Set("index.html", IndexHTML(c.brand))
	files.Set("vite.config.js", ViteConfig)
	files.Set("tailwind.config.js", TailwindConfig)
	files.Set("postcss.config.js", PostCSSConfig)
	files.Set("src/main.jsx", MainJSX)
	files.Set("src/index.css", IndexCSS)
	files.Set("src/App.jsx", AppJSX([]string{
		"components/Navbar.jsx",
		"components/Hero.jsx",
		"components/Services.jsx",
		"components/About.jsx",
		"components/Contact.jsx",
		"components/Footer.jsx",
	}))
	files.Set("src/components/Navbar.jsx", baselineNavbar(c.brand))
	files.Set("src/components/Hero.jsx", baselineHero(c.heroHead, c.heroSub))
	files.Set("src/components/Services.jsx", baselineServices(c.services))
	files.Set("src/components/About.jsx", baselineAbout(c.brand))
	files.Set("src/components/Contact.jsx", baselineContact())
	files.Set("src/components/Footer.jsx", FooterJSX(domain))
	return files
}

func baselineNavbar(brand string) string {
	return fmt.Sprintf(`import React, { useState } from 'react';

function Navbar() {
  const [open, setOpen] = useState(false);
  const links = ['Home', 'Services', 'About', 'Contact'];
  return (
    <nav className="bg-white shadow-md sticky top-0 z-50">
      <div className="max-w-6xl mx-auto px-4 flex items-center justify-between h-16">
        <a href="#home" className="flex items-center gap-3">
          <img src="%s" alt="Logo" className="h-10 w-10 rounded-full object-cover" />
          <span className="text-xl font-bold text-gray-900">%s</span>
        </a>
        <div className="hidden md:flex gap-8">
          {links.map((link) => (
            <a key={link} href={'#' + link.toLowerCase()} className="text-gray-600 hover:text-gray-900 font-medium">
              {link}
            </a>
          ))}
        </div>
        <button className="md:hidden p-2" onClick={() => setOpen(!open)} aria-label="Menu">
          <span className="block w-6 h-0.5 bg-gray-900 mb-1"></span>
          <span className="block w-6 h-0.5 bg-gray-900 mb-1"></span>
          <span className="block w-6 h-0.5 bg-gray-900"></span>
        </button>
      </div>
      {open && (
        <div className="md:hidden px-4 pb-4 space-y-2">
          {links.map((link) => (
            <a key={link} href={'#' + link.toLowerCase()} className="block text-gray-600 py-1">
              {link}
            </a>
          ))}
        </div>
      )}
    </nav>
  );
}

export default Navbar;`, baselineImages["logo"], brand)
}

func baselineHero(head, sub string) string {
	return fmt.Sprintf(`import React from 'react';

function Hero() {
  return (
    <section id="home" className="relative h-[70vh] flex items-center justify-center text-center text-white">
      <img src="%s" alt="Hero" className="absolute inset-0 w-full h-full object-cover" />
      <div className="absolute inset-0 bg-black/50"></div>
      <div className="relative z-10 max-w-3xl px-4">
        <h1 className="text-4xl md:text-6xl font-bold mb-4">%s</h1>
        <p className="text-lg md:text-xl text-gray-200 mb-8">%s</p>
        <div className="flex gap-4 justify-center">
          <a href="#contact" className="bg-blue-600 hover:bg-blue-700 px-8 py-3 rounded-lg font-semibold">
            Get Started
          </a>
          <a href="#services" className="bg-white/10 hover:bg-white/20 border border-white px-8 py-3 rounded-lg font-semibold">
            Learn More
          </a>
        </div>
      </div>
    </section>
  );
}

export default Hero;`, baselineImages["hero"], head, sub)
}

func baselineServices(names [3]string) string {
	return fmt.Sprintf(`import React from 'react';

const services = [
  { title: '%s', text: 'Tailored to your goals with measurable outcomes from day one.' },
  { title: '%s', text: 'Delivered by experienced professionals who care about results.' },
  { title: '%s', text: 'Flexible options designed to fit your schedule and budget.' },
];

function Services() {
  return (
    <section id="services" className="py-20 bg-gray-50">
      <div className="max-w-6xl mx-auto px-4">
        <h2 className="text-3xl font-bold text-center mb-2">Our Services</h2>
        <p className="text-gray-600 text-center mb-12">Everything you need in one place.</p>
        <div className="grid md:grid-cols-3 gap-8">
          {services.map((s) => (
            <div key={s.title} className="bg-white rounded-xl shadow p-6 hover:shadow-lg transition">
              <img src="%s" alt={s.title} className="w-16 h-16 rounded mb-4 object-cover" />
              <h3 className="text-xl font-semibold mb-2">{s.title}</h3>
              <p className="text-gray-600">{s.text}</p>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}

export default Services;`, names[0], names[1], names[2], baselineImages["service"])
}

func baselineAbout(brand string) string {
	return fmt.Sprintf(`import React from 'react';

function About() {
  return (
    <section id="about" className="py-20">
      <div className="max-w-6xl mx-auto px-4 grid md:grid-cols-2 gap-12 items-center">
        <img src="%s" alt="About" className="rounded-xl shadow-lg w-full h-64 object-cover" />
        <div>
          <h2 className="text-3xl font-bold mb-4">About %s</h2>
          <p className="text-gray-600 mb-4 leading-relaxed">
            We have been serving our community for over a decade, combining
            experience with a genuine passion for what we do. Every client
            relationship starts with listening and ends with results.
          </p>
          <ul className="space-y-2 text-gray-700">
            <li>10+ years of experience</li>
            <li>Hundreds of satisfied clients</li>
            <li>A team that treats you like family</li>
          </ul>
        </div>
      </div>
    </section>
  );
}

export default About;`, baselineImages["about"], brand)
}

func baselineContact() string {
	return fmt.Sprintf(`import React, { useState } from 'react';

function Contact() {
  const [form, setForm] = useState({ name: '', email: '', message: '' });
  const [sent, setSent] = useState(false);

  const handleChange = (e) =>
    setForm({ ...form, [e.target.name]: e.target.value });

  const handleSubmit = (e) => {
    e.preventDefault();
    setSent(true);
  };

  return (
    <section id="contact" className="py-20 bg-gray-50">
      <div className="max-w-6xl mx-auto px-4 grid md:grid-cols-2 gap-12">
        <div>
          <h2 className="text-3xl font-bold mb-4">Get In Touch</h2>
          <p className="text-gray-600 mb-6">We usually reply within one business day.</p>
          <img src="%s" alt="Office" className="rounded-xl w-full h-48 object-cover" />
        </div>
        <form onSubmit={handleSubmit} className="space-y-4">
          <input name="name" value={form.name} onChange={handleChange} placeholder="Your name"
            className="w-full border rounded-lg px-4 py-3" required />
          <input name="email" type="email" value={form.email} onChange={handleChange} placeholder="Email address"
            className="w-full border rounded-lg px-4 py-3" required />
          <textarea name="message" value={form.message} onChange={handleChange} placeholder="How can we help?"
            rows="5" className="w-full border rounded-lg px-4 py-3" required />
          <button type="submit" className="bg-blue-600 hover:bg-blue-700 text-white px-8 py-3 rounded-lg font-semibold">
            {sent ? 'Message Sent!' : 'Send Message'}
          </button>
        </form>
      </div>
    </section>
  );
}

export default Contact;`, baselineImages["office"])
}
