// Package roadmap converts a skill-gap list into a phased, resourced
// learning plan.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/types"
)

// Bundle is the learning material attached to one skill: curated resources,
// hands-on project ideas, and an effort estimate in hours.
type Bundle struct {
	Resources []types.Resource
	Projects  []string
	Hours     int
}

// defaultHours is the effort estimate for skills outside the library.
const defaultHours = 20

// fallbackBundle is returned for skills the library does not cover: a
// search link plus a generic project suggestion.
func fallbackBundle(skill string) Bundle {
	query := strings.ReplaceAll(skill, " ", "+")
	return Bundle{
		Resources: []types.Resource{
			{
				Name: fmt.Sprintf("Search: learn %s", skill),
				URL:  fmt.Sprintf("https://www.google.com/search?q=learn+%s", query),
				Type: "search",
			},
		},
		Projects: []string{fmt.Sprintf("Build a small project demonstrating %s", skill)},
		Hours:    defaultHours,
	}
}

// Lookup returns the curated bundle for a skill and whether one exists.
func Lookup(skill string) (Bundle, bool) {
	b, ok := library[strings.ToLower(strings.TrimSpace(skill))]
	return b, ok
}

// library maps skill name to its curated learning bundle.
var library = map[string]Bundle{
	"python": {
		Resources: []types.Resource{
			{Name: "Python Official Tutorial", URL: "https://docs.python.org/3/tutorial/", Type: "docs"},
			{Name: "CS50P - Harvard Python", URL: "https://cs50.harvard.edu/python/", Type: "course"},
			{Name: "Real Python", URL: "https://realpython.com/", Type: "guide"},
		},
		Projects: []string{"CLI tool", "web scraper", "data analysis notebook"},
		Hours:    40,
	},
	"javascript": {
		Resources: []types.Resource{
			{Name: "javascript.info", URL: "https://javascript.info/", Type: "guide"},
			{Name: "MDN Web Docs - JS", URL: "https://developer.mozilla.org/docs/Web/JavaScript", Type: "docs"},
			{Name: "freeCodeCamp JS Algorithms", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Type: "course"},
		},
		Projects: []string{"To-do app", "weather dashboard", "quiz game"},
		Hours:    50,
	},
	"typescript": {
		Resources: []types.Resource{
			{Name: "TypeScript Official Docs", URL: "https://www.typescriptlang.org/docs/", Type: "docs"},
			{Name: "Total TypeScript", URL: "https://www.totaltypescript.com/", Type: "guide"},
		},
		Projects: []string{"Type-safe REST client", "typed React component library"},
		Hours:    25,
	},
	"java": {
		Resources: []types.Resource{
			{Name: "Java Programming MOOC - Helsinki", URL: "https://java-programming.mooc.fi/", Type: "course"},
			{Name: "Baeldung", URL: "https://www.baeldung.com/", Type: "guide"},
		},
		Projects: []string{"REST API with Spring Boot", "multi-threaded file processor"},
		Hours:    60,
	},
	"c++": {
		Resources: []types.Resource{
			{Name: "learncpp.com", URL: "https://www.learncpp.com/", Type: "guide"},
			{Name: "cppreference", URL: "https://en.cppreference.com/", Type: "docs"},
		},
		Projects: []string{"Data structures library", "game engine prototype"},
		Hours:    60,
	},
	"go": {
		Resources: []types.Resource{
			{Name: "Tour of Go", URL: "https://go.dev/tour/", Type: "guide"},
			{Name: "Go by Example", URL: "https://gobyexample.com/", Type: "guide"},
		},
		Projects: []string{"HTTP microservice", "concurrent web crawler"},
		Hours:    35,
	},
	"rust": {
		Resources: []types.Resource{
			{Name: "The Rust Book", URL: "https://doc.rust-lang.org/book/", Type: "docs"},
			{Name: "Rustlings", URL: "https://github.com/rust-lang/rustlings", Type: "practice"},
		},
		Projects: []string{"CLI utility", "key-value store"},
		Hours:    60,
	},
	"html": {
		Resources: []types.Resource{
			{Name: "MDN HTML", URL: "https://developer.mozilla.org/docs/Web/HTML", Type: "docs"},
			{Name: "freeCodeCamp Responsive Web", URL: "https://www.freecodecamp.org/learn/2022/responsive-web-design/", Type: "course"},
		},
		Projects: []string{"Portfolio page", "HTML email template"},
		Hours:    15,
	},
	"css": {
		Resources: []types.Resource{
			{Name: "CSS-Tricks", URL: "https://css-tricks.com/", Type: "guide"},
			{Name: "Flexbox Froggy", URL: "https://flexboxfroggy.com/", Type: "practice"},
		},
		Projects: []string{"Pixel-perfect landing page", "animated UI components"},
		Hours:    20,
	},
	"react": {
		Resources: []types.Resource{
			{Name: "React Official Docs", URL: "https://react.dev/", Type: "docs"},
			{Name: "Full Stack Open - React", URL: "https://fullstackopen.com/en/", Type: "course"},
		},
		Projects: []string{"Blog platform SPA", "real-time chat with WebSockets"},
		Hours:    45,
	},
	"nextjs": {
		Resources: []types.Resource{
			{Name: "Next.js Docs", URL: "https://nextjs.org/docs", Type: "docs"},
			{Name: "Vercel Learn Next.js", URL: "https://nextjs.org/learn", Type: "course"},
		},
		Projects: []string{"SSR e-commerce site", "blog with MDX"},
		Hours:    30,
	},
	"vue": {
		Resources: []types.Resource{
			{Name: "Vue 3 Docs", URL: "https://vuejs.org/guide/introduction.html", Type: "docs"},
		},
		Projects: []string{"Dashboard UI", "real-time todo with Pinia"},
		Hours:    35,
	},
	"tailwind": {
		Resources: []types.Resource{
			{Name: "Tailwind CSS Docs", URL: "https://tailwindcss.com/docs", Type: "docs"},
		},
		Projects: []string{"Redesign a site with Tailwind", "component library"},
		Hours:    10,
	},
	"django": {
		Resources: []types.Resource{
			{Name: "Django Official Tutorial", URL: "https://docs.djangoproject.com/en/stable/intro/tutorial01/", Type: "docs"},
			{Name: "Django for Beginners - Learndjango", URL: "https://learndjango.com/", Type: "guide"},
		},
		Projects: []string{"Blog CMS", "e-commerce backend with DRF"},
		Hours:    40,
	},
	"flask": {
		Resources: []types.Resource{
			{Name: "Flask Docs", URL: "https://flask.palletsprojects.com/", Type: "docs"},
			{Name: "The Flask Mega-Tutorial", URL: "https://blog.miguelgrinberg.com/post/the-flask-mega-tutorial-part-i-hello-world", Type: "guide"},
		},
		Projects: []string{"REST API", "JWT-auth microservice"},
		Hours:    25,
	},
	"fastapi": {
		Resources: []types.Resource{
			{Name: "FastAPI Docs", URL: "https://fastapi.tiangolo.com/", Type: "docs"},
		},
		Projects: []string{"Async REST API", "ML model serving endpoint"},
		Hours:    20,
	},
	"springboot": {
		Resources: []types.Resource{
			{Name: "Spring Boot Guides", URL: "https://spring.io/guides", Type: "docs"},
			{Name: "Baeldung Spring Boot", URL: "https://www.baeldung.com/spring-boot", Type: "guide"},
		},
		Projects: []string{"Microservice with Spring Cloud", "REST API with JPA"},
		Hours:    50,
	},
	"express": {
		Resources: []types.Resource{
			{Name: "Express Docs", URL: "https://expressjs.com/", Type: "docs"},
			{Name: "Full Stack Open - Node", URL: "https://fullstackopen.com/en/part3", Type: "course"},
		},
		Projects: []string{"RESTful API server", "auth middleware library"},
		Hours:    25,
	},
	"sql": {
		Resources: []types.Resource{
			{Name: "SQLZoo", URL: "https://sqlzoo.net/", Type: "practice"},
			{Name: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial/", Type: "guide"},
		},
		Projects: []string{"Design e-commerce schema", "analytics queries on open dataset"},
		Hours:    20,
	},
	"postgresql": {
		Resources: []types.Resource{
			{Name: "PostgreSQL Tutorial", URL: "https://www.postgresqltutorial.com/", Type: "guide"},
			{Name: "PostgreSQL Docs", URL: "https://www.postgresql.org/docs/", Type: "docs"},
		},
		Projects: []string{"Multi-tenant SaaS schema", "full-text search feature"},
		Hours:    20,
	},
	"mongodb": {
		Resources: []types.Resource{
			{Name: "MongoDB University", URL: "https://university.mongodb.com/", Type: "course"},
			{Name: "MongoDB Docs", URL: "https://www.mongodb.com/docs/", Type: "docs"},
		},
		Projects: []string{"Social-media data model", "aggregation pipeline analytics"},
		Hours:    20,
	},
	"redis": {
		Resources: []types.Resource{
			{Name: "Redis University", URL: "https://university.redis.io/", Type: "course"},
			{Name: "Redis Docs", URL: "https://redis.io/docs/", Type: "docs"},
		},
		Projects: []string{"Session store", "leaderboard / pub-sub"},
		Hours:    15,
	},
	"docker": {
		Resources: []types.Resource{
			{Name: "Docker Docs - Getting Started", URL: "https://docs.docker.com/get-started/", Type: "docs"},
			{Name: "Play with Docker", URL: "https://labs.play-with-docker.com/", Type: "practice"},
		},
		Projects: []string{"Containerise a Flask app", "multi-container compose setup"},
		Hours:    20,
	},
	"kubernetes": {
		Resources: []types.Resource{
			{Name: "Kubernetes Docs", URL: "https://kubernetes.io/docs/home/", Type: "docs"},
			{Name: "KillerCoda - K8s", URL: "https://killercoda.com/kubernetes", Type: "practice"},
		},
		Projects: []string{"Deploy microservices on local cluster", "Helm chart for web app"},
		Hours:    40,
	},
	"aws": {
		Resources: []types.Resource{
			{Name: "AWS Skill Builder (Free)", URL: "https://skillbuilder.aws/", Type: "course"},
			{Name: "AWS Cloud Practitioner Essentials", URL: "https://aws.amazon.com/training/learn-about/cloud-practitioner/", Type: "course"},
		},
		Projects: []string{"Host static site on S3 + CloudFront", "serverless API with Lambda"},
		Hours:    50,
	},
	"terraform": {
		Resources: []types.Resource{
			{Name: "HashiCorp Learn - Terraform", URL: "https://developer.hashicorp.com/terraform/tutorials", Type: "course"},
		},
		Projects: []string{"Provision VPC + EC2 with Terraform", "multi-environment IaC"},
		Hours:    25,
	},
	"ci/cd": {
		Resources: []types.Resource{
			{Name: "GitHub Actions Docs", URL: "https://docs.github.com/en/actions", Type: "docs"},
			{Name: "CircleCI Learn", URL: "https://circleci.com/blog/learn-iac-part1/", Type: "guide"},
		},
		Projects: []string{"CI/CD pipeline for a Python app", "auto-deploy to cloud on merge"},
		Hours:    20,
	},
	"linux": {
		Resources: []types.Resource{
			{Name: "The Linux Command Line (free PDF)", URL: "https://linuxcommand.org/tlcl.php", Type: "guide"},
			{Name: "OverTheWire - Bandit", URL: "https://overthewire.org/wargames/bandit/", Type: "practice"},
		},
		Projects: []string{"Automate server setup with shell script", "cron job manager"},
		Hours:    25,
	},
	"machine learning": {
		Resources: []types.Resource{
			{Name: "Andrew Ng - ML Specialization (Coursera)", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Type: "course"},
			{Name: "fast.ai Practical ML", URL: "https://course.fast.ai/", Type: "course"},
		},
		Projects: []string{"House price predictor", "sentiment analysis classifier"},
		Hours:    80,
	},
	"deep learning": {
		Resources: []types.Resource{
			{Name: "Deep Learning Specialization - Coursera", URL: "https://www.coursera.org/specializations/deep-learning", Type: "course"},
			{Name: "fast.ai Deep Learning", URL: "https://course.fast.ai/", Type: "course"},
		},
		Projects: []string{"Image classifier with CNN", "text generator with LSTM"},
		Hours:    80,
	},
	"natural language processing": {
		Resources: []types.Resource{
			{Name: "HuggingFace NLP Course", URL: "https://huggingface.co/learn/nlp-course/", Type: "course"},
			{Name: "Stanford CS224N (free lectures)", URL: "https://web.stanford.edu/class/cs224n/", Type: "course"},
		},
		Projects: []string{"Named-entity recognition API", "document summariser"},
		Hours:    60,
	},
	"pytorch": {
		Resources: []types.Resource{
			{Name: "PyTorch Tutorials (Official)", URL: "https://pytorch.org/tutorials/", Type: "docs"},
			{Name: "Deep Learning with PyTorch - freeCodeCamp", URL: "https://www.youtube.com/watch?v=GIsg-ZUy0MY", Type: "course"},
		},
		Projects: []string{"Custom neural net for classification", "fine-tune BERT"},
		Hours:    45,
	},
	"tensorflow": {
		Resources: []types.Resource{
			{Name: "TensorFlow Tutorials (Official)", URL: "https://www.tensorflow.org/tutorials", Type: "docs"},
		},
		Projects: []string{"Image recognition with Keras", "time series forecast"},
		Hours:    40,
	},
	"scikit-learn": {
		Resources: []types.Resource{
			{Name: "Scikit-learn User Guide", URL: "https://scikit-learn.org/stable/user_guide.html", Type: "docs"},
		},
		Projects: []string{"Churn prediction pipeline", "feature selection experiment"},
		Hours:    20,
	},
	"mlops": {
		Resources: []types.Resource{
			{Name: "MLOps Specialization - Coursera", URL: "https://www.coursera.org/specializations/machine-learning-engineering-for-production-mlops", Type: "course"},
			{Name: "Made With ML - MLOps", URL: "https://madewithml.com/", Type: "guide"},
		},
		Projects: []string{"Model registry with MLflow", "automated retraining pipeline"},
		Hours:    50,
	},
	"llm": {
		Resources: []types.Resource{
			{Name: "Andrej Karpathy - Let's build GPT", URL: "https://www.youtube.com/watch?v=kCc8FmEb1nY", Type: "course"},
			{Name: "LangChain Docs", URL: "https://python.langchain.com/docs/get_started/introduction", Type: "docs"},
		},
		Projects: []string{"RAG chatbot over custom documents", "LLM-powered code reviewer"},
		Hours:    60,
	},
	"spark": {
		Resources: []types.Resource{
			{Name: "Spark Official Docs", URL: "https://spark.apache.org/docs/latest/", Type: "docs"},
			{Name: "Databricks Academy (Free)", URL: "https://www.databricks.com/learn/training", Type: "course"},
		},
		Projects: []string{"Batch ETL pipeline", "Spark streaming word count"},
		Hours:    50,
	},
	"kafka": {
		Resources: []types.Resource{
			{Name: "Kafka Quickstart", URL: "https://kafka.apache.org/quickstart", Type: "docs"},
			{Name: "Confluent Developer Courses", URL: "https://developer.confluent.io/learn-kafka/", Type: "course"},
		},
		Projects: []string{"Real-time event pipeline", "Kafka + Spark streaming"},
		Hours:    35,
	},
	"airflow": {
		Resources: []types.Resource{
			{Name: "Airflow Official Docs", URL: "https://airflow.apache.org/docs/", Type: "docs"},
			{Name: "Astronomer Learn Airflow", URL: "https://docs.astronomer.io/learn", Type: "guide"},
		},
		Projects: []string{"Scheduled data pipeline DAG", "ETL with retries and alerts"},
		Hours:    30,
	},
	"algorithms": {
		Resources: []types.Resource{
			{Name: "Algorithms - Princeton (Coursera)", URL: "https://www.coursera.org/learn/algorithms-part1", Type: "course"},
			{Name: "NeetCode DSA Roadmap", URL: "https://neetcode.io/roadmap", Type: "practice"},
		},
		Projects: []string{"Implement sorting algorithms from scratch", "solve 50 LeetCode medium problems"},
		Hours:    60,
	},
	"data structures": {
		Resources: []types.Resource{
			{Name: "Visualgo", URL: "https://visualgo.net/", Type: "practice"},
			{Name: "MIT OpenCourseWare 6.006", URL: "https://ocw.mit.edu/courses/6-006-introduction-to-algorithms-spring-2020/", Type: "course"},
		},
		Projects: []string{"Build a binary search tree library", "implement LRU cache"},
		Hours:    40,
	},
	"dynamic programming": {
		Resources: []types.Resource{
			{Name: "Dynamic Programming Patterns - LeetCode", URL: "https://leetcode.com/discuss/general-discussion/458695/dynamic-programming-patterns", Type: "guide"},
			{Name: "Aditya Verma DP Playlist", URL: "https://www.youtube.com/playlist?list=PL_z_8CaSLPWekqhdCPmFohncHwz8TY2Go", Type: "course"},
		},
		Projects: []string{"Solve 30 DP problems on LeetCode", "implement knapsack variants"},
		Hours:    30,
	},
	"system design": {
		Resources: []types.Resource{
			{Name: "System Design Primer - GitHub", URL: "https://github.com/donnemartin/system-design-primer", Type: "guide"},
			{Name: "Gaurav Sen System Design (YouTube)", URL: "https://www.youtube.com/c/GauravSensei", Type: "course"},
			{Name: "ByteByteGo Newsletter", URL: "https://bytebytego.com/", Type: "guide"},
		},
		Projects: []string{"Design URL shortener", "design Twitter feed system"},
		Hours:    50,
	},
	"microservices": {
		Resources: []types.Resource{
			{Name: "Microservices.io", URL: "https://microservices.io/", Type: "guide"},
			{Name: "Sam Newman - Building Microservices (O'Reilly)", URL: "https://www.oreilly.com/library/view/building-microservices-2nd/9781492034018/", Type: "guide"},
		},
		Projects: []string{"Decompose a monolith into 3 services", "inter-service communication demo"},
		Hours:    40,
	},
	"graphql": {
		Resources: []types.Resource{
			{Name: "HowToGraphQL", URL: "https://www.howtographql.com/", Type: "course"},
			{Name: "GraphQL Official Docs", URL: "https://graphql.org/learn/", Type: "docs"},
		},
		Projects: []string{"GraphQL API for blog", "replace REST with GraphQL layer"},
		Hours:    20,
	},
	"rest api": {
		Resources: []types.Resource{
			{Name: "REST API Tutorial", URL: "https://restfulapi.net/", Type: "guide"},
			{Name: "Postman Learning Centre", URL: "https://learning.postman.com/", Type: "guide"},
		},
		Projects: []string{"Design and document a REST API", "versioned API with rate limiting"},
		Hours:    15,
	},
	"git": {
		Resources: []types.Resource{
			{Name: "Pro Git Book (free)", URL: "https://git-scm.com/book/en/v2", Type: "guide"},
			{Name: "Learn Git Branching", URL: "https://learngitbranching.js.org/", Type: "practice"},
		},
		Projects: []string{"Contribute to an open-source repo", "maintain changelog with git tags"},
		Hours:    10,
	},
	"unit testing": {
		Resources: []types.Resource{
			{Name: "pytest Docs", URL: "https://docs.pytest.org/", Type: "docs"},
			{Name: "TDD with Python - Harry Percival", URL: "https://www.obeythetestinggoat.com/", Type: "guide"},
		},
		Projects: []string{"Achieve 80%+ coverage on a project", "test suite for a REST API"},
		Hours:    15,
	},
	"authentication": {
		Resources: []types.Resource{
			{Name: "OWASP Authentication Cheat Sheet", URL: "https://cheatsheetseries.owasp.org/cheatsheets/Authentication_Cheat_Sheet.html", Type: "guide"},
			{Name: "Auth0 Blog", URL: "https://auth0.com/blog/", Type: "guide"},
		},
		Projects: []string{"JWT auth system", "OAuth2 integration with GitHub"},
		Hours:    15,
	},
	"caching": {
		Resources: []types.Resource{
			{Name: "Redis Caching Patterns", URL: "https://redis.io/docs/manual/patterns/", Type: "docs"},
		},
		Projects: []string{"Cache database queries with Redis", "CDN edge-cache strategy"},
		Hours:    10,
	},
}
